package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/FlippingBinary/grocery-deflater/internal/usecase"
)

// buildTypes declares the output object types. Scalar fields resolve through
// the default resolver against the usecase DTOs; nested fields re-enter the
// usecase layer with the source object as the parent.
func (b *schemaBuilder) buildTypes() {
	b.categoryType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":          &graphql.Field{Type: graphql.ID},
				"name":        &graphql.Field{Type: graphql.String},
				"description": &graphql.Field{Type: graphql.String},
				"products": &graphql.Field{
					Type: graphql.NewList(b.productType),
					Args: graphql.FieldConfigArgument{
						"filterBy": &graphql.ArgumentConfig{Type: b.productFilterInput},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						parent, ok := p.Source.(*usecase.Category)
						if !ok {
							return nil, nil
						}
						filter, err := filterArg[usecase.ProductFilter](p, "filterBy")
						if err != nil {
							return nil, err
						}

						return b.uc.Products.ResolveProducts(p.Context, filter, usecase.WithinCategory(parent))
					},
				},
			}
		}),
	})

	b.locationType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Location",
		Fields: graphql.Fields{
			"address": &graphql.Field{Type: graphql.String},
			"city":    &graphql.Field{Type: graphql.String},
			"state":   &graphql.Field{Type: graphql.String},
			"zip":     &graphql.Field{Type: graphql.String},
		},
	})

	b.merchantType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Merchant",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":       &graphql.Field{Type: graphql.ID},
				"name":     &graphql.Field{Type: graphql.String},
				"location": &graphql.Field{Type: b.locationType},
				"products": &graphql.Field{
					Type: graphql.NewList(b.productType),
					Args: graphql.FieldConfigArgument{
						"filterBy": &graphql.ArgumentConfig{Type: b.productFilterInput},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						parent, ok := p.Source.(*usecase.Merchant)
						if !ok {
							return nil, nil
						}
						filter, err := filterArg[usecase.ProductFilter](p, "filterBy")
						if err != nil {
							return nil, err
						}

						return b.uc.Products.ResolveProducts(p.Context, filter, usecase.WithinMerchant(parent))
					},
				},
			}
		}),
	})

	b.productType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":         &graphql.Field{Type: graphql.ID},
				"name":       &graphql.Field{Type: graphql.String},
				"picture":    &graphql.Field{Type: graphql.String},
				"categoryId": &graphql.Field{Type: graphql.ID},
				"price":      &graphql.Field{Type: graphql.Float},
				"weight":     &graphql.Field{Type: graphql.Float},
				"merchantId": &graphql.Field{Type: graphql.ID},
				"category": &graphql.Field{
					Type: b.categoryType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						parent, ok := p.Source.(*usecase.Product)
						if !ok {
							return nil, nil
						}
						categories, err := b.uc.Categories.ResolveCategories(p.Context, nil, parent)
						if err != nil {
							return nil, err
						}
						if len(categories) == 0 {
							return nil, nil
						}

						return categories[0], nil
					},
				},
				"merchant": &graphql.Field{
					Type: b.merchantType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						parent, ok := p.Source.(*usecase.Product)
						if !ok {
							return nil, nil
						}
						merchants, err := b.uc.Merchants.ResolveMerchants(p.Context, nil, parent)
						if err != nil {
							return nil, err
						}
						if len(merchants) == 0 {
							return nil, nil
						}

						return merchants[0], nil
					},
				},
				"merchants": &graphql.Field{
					Type: graphql.NewList(b.merchantType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						parent, ok := p.Source.(*usecase.Product)
						if !ok {
							return nil, nil
						}

						return b.uc.Merchants.ResolveMerchants(p.Context, nil, parent)
					},
				},
			}
		}),
	})

	b.listType = graphql.NewObject(graphql.ObjectConfig{
		Name: "List",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":   &graphql.Field{Type: graphql.ID},
				"name": &graphql.Field{Type: graphql.String},
				"products": &graphql.Field{
					Type: graphql.NewList(b.productType),
					Args: graphql.FieldConfigArgument{
						"filterBy": &graphql.ArgumentConfig{Type: b.productFilterInput},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						parent, ok := p.Source.(*usecase.List)
						if !ok {
							return nil, nil
						}
						filter, err := filterArg[usecase.ProductFilter](p, "filterBy")
						if err != nil {
							return nil, err
						}

						return b.uc.Products.ResolveProducts(p.Context, filter, usecase.WithinList(parent))
					},
				},
			}
		}),
	})

	b.userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.Int},
			"name":         &graphql.Field{Type: graphql.String},
			"firstName":    &graphql.Field{Type: graphql.String},
			"lastName":     &graphql.Field{Type: graphql.String},
			"email":        &graphql.Field{Type: graphql.String},
			"password":     &graphql.Field{Type: graphql.String},
			"mobileNumber": &graphql.Field{Type: graphql.String},
		},
	})
}
