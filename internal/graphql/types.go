package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/medisuite/hospital-services/internal/model"
)

// Shared output types. Scalar fields resolve off the models' json tags;
// relation fields are attached by the service layer before the executor
// sees them, so no custom resolvers are needed here.

func newDeleteResultType() *gql.Object {
	statusEnum := gql.NewEnum(gql.EnumConfig{
		Name: "DeleteStatus",
		Values: gql.EnumValueConfigMap{
			"DELETED":   &gql.EnumValueConfig{Value: model.DeleteStatusDeleted},
			"NOT_FOUND": &gql.EnumValueConfig{Value: model.DeleteStatusNotFound},
		},
	})

	return gql.NewObject(gql.ObjectConfig{
		Name: "DeleteResult",
		Fields: gql.Fields{
			"status":  &gql.Field{Type: gql.NewNonNull(statusEnum)},
			"message": &gql.Field{Type: gql.NewNonNull(gql.String)},
		},
	})
}
