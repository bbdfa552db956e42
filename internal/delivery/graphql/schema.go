// Package graphql builds the executable schema over the usecase layer. Field
// resolvers translate wire arguments into usecase filters and dispatch on the
// parent object to pick the right resolution context.
package graphql

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/FlippingBinary/grocery-deflater/internal/usecase"
)

// SchemaParams collects the services the resolvers dispatch to.
type SchemaParams struct {
	fx.In

	Categories usecase.CategoryUsecase
	Merchants  usecase.MerchantUsecase
	Products   usecase.ProductUsecase
	Lists      usecase.ListUsecase
	Users      usecase.UserUsecase
}

// schemaBuilder holds the object types while the schema is assembled. The
// nested fields are circular (a product resolves its merchants, a merchant
// its products), so the types are declared first and their field maps are
// supplied as thunks.
type schemaBuilder struct {
	uc SchemaParams

	stringMatchInput    *graphql.InputObject
	categoryFilterInput *graphql.InputObject
	locationFilterInput *graphql.InputObject
	merchantFilterInput *graphql.InputObject
	productFilterInput  *graphql.InputObject
	listFilterInput     *graphql.InputObject
	updatePriceInput    *graphql.InputObject
	addToListInput      *graphql.InputObject

	categoryType *graphql.Object
	locationType *graphql.Object
	merchantType *graphql.Object
	productType  *graphql.Object
	listType     *graphql.Object
	userType     *graphql.Object
}

// NewSchema assembles the executable schema.
func NewSchema(params SchemaParams) (graphql.Schema, error) {
	b := &schemaBuilder{uc: params}
	b.buildInputs()
	b.buildTypes()

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryType(),
		Mutation: b.mutationType(),
	})
	if err != nil {
		return graphql.Schema{}, errors.Wrap(err, "failed to build graphql schema")
	}

	return schema, nil
}

func (b *schemaBuilder) buildInputs() {
	b.stringMatchInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "StrMatch",
		Fields: graphql.InputObjectConfigFieldMap{
			"startsWith": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"endsWith":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"matches":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	b.categoryFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CategoryFilter",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":          &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"name":        &graphql.InputObjectFieldConfig{Type: b.stringMatchInput},
			"description": &graphql.InputObjectFieldConfig{Type: b.stringMatchInput},
		},
	})

	b.locationFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LocationFilter",
		Fields: graphql.InputObjectConfigFieldMap{
			"address": &graphql.InputObjectFieldConfig{Type: b.stringMatchInput},
			"city":    &graphql.InputObjectFieldConfig{Type: b.stringMatchInput},
			"state":   &graphql.InputObjectFieldConfig{Type: b.stringMatchInput},
			"zip":     &graphql.InputObjectFieldConfig{Type: b.stringMatchInput},
		},
	})

	b.merchantFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "MerchantFilter",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"name":     &graphql.InputObjectFieldConfig{Type: b.stringMatchInput},
			"location": &graphql.InputObjectFieldConfig{Type: b.locationFilterInput},
		},
	})

	b.productFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductFilter",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":         &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"name":       &graphql.InputObjectFieldConfig{Type: b.stringMatchInput},
			"category":   &graphql.InputObjectFieldConfig{Type: b.stringMatchInput},
			"categoryId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})

	b.listFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ListFilter",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":     &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"userId": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"name":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	b.updatePriceInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateProductPriceInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"productId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"merchantId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"price":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	b.addToListInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AddToListInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"listId":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"productId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})
}

func (b *schemaBuilder) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"categories": &graphql.Field{
				Type: graphql.NewList(b.categoryType),
				Args: graphql.FieldConfigArgument{
					"filterBy": &graphql.ArgumentConfig{Type: b.categoryFilterInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter, err := filterArg[usecase.CategoryFilter](p, "filterBy")
					if err != nil {
						return nil, err
					}

					return b.uc.Categories.ResolveCategories(p.Context, filter, nil)
				},
			},
			"merchants": &graphql.Field{
				Type: graphql.NewList(b.merchantType),
				Args: graphql.FieldConfigArgument{
					"filterBy": &graphql.ArgumentConfig{Type: b.merchantFilterInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter, err := filterArg[usecase.MerchantFilter](p, "filterBy")
					if err != nil {
						return nil, err
					}

					return b.uc.Merchants.ResolveMerchants(p.Context, filter, nil)
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(b.productType),
				Args: graphql.FieldConfigArgument{
					"filterBy": &graphql.ArgumentConfig{Type: b.productFilterInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter, err := filterArg[usecase.ProductFilter](p, "filterBy")
					if err != nil {
						return nil, err
					}

					return b.uc.Products.ResolveProducts(p.Context, filter, usecase.Standalone())
				},
			},
			"list": &graphql.Field{
				Type: b.listType,
				Args: graphql.FieldConfigArgument{
					"filterBy": &graphql.ArgumentConfig{Type: b.listFilterInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter, err := filterArg[usecase.ListFilter](p, "filterBy")
					if err != nil {
						return nil, err
					}
					if filter == nil {
						filter = &usecase.ListFilter{}
					}

					return b.uc.Lists.ResolveList(p.Context, *filter)
				},
			},
			"user": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					email, _ := p.Args["email"].(string)

					return b.uc.Users.ResolveUser(p.Context, email)
				},
			},
		},
	})
}

func (b *schemaBuilder) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"updateProductPrice": &graphql.Field{
				Type: b.productType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(b.updatePriceInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var input usecase.UpdateProductPriceInput
					if err := decodeArg(p.Args["input"], &input); err != nil {
						return nil, err
					}

					return b.uc.Products.UpdateProductPrice(p.Context, input)
				},
			},
			"addToList": &graphql.Field{
				Type: b.listType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(b.addToListInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var input usecase.AddToListInput
					if err := decodeArg(p.Args["input"], &input); err != nil {
						return nil, err
					}

					return b.uc.Lists.AddToList(p.Context, input)
				},
			},
		},
	})
}

// filterArg decodes an optional object argument into the given filter type.
// An absent argument yields nil.
func filterArg[T any](p graphql.ResolveParams, key string) (*T, error) {
	raw, ok := p.Args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	out := new(T)
	if err := decodeArg(raw, out); err != nil {
		return nil, err
	}

	return out, nil
}

func decodeArg(raw interface{}, out interface{}) error {
	if err := mapstructure.Decode(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode graphql arguments")
	}

	return nil
}
