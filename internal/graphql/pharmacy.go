package graphql

import (
	"fmt"

	gql "github.com/graphql-go/graphql"

	"github.com/medisuite/hospital-services/internal/model"
	medicinesvc "github.com/medisuite/hospital-services/internal/service/medicine"
)

// PharmacyServices bundles everything the pharmacy schema resolves
// against.
type PharmacyServices struct {
	Medicines medicinesvc.MedicineService
}

// NewPharmacySchema builds the pharmacy service's GraphQL schema:
// medicine CRUD plus on-demand patient hydration from the admin
// service.
func NewPharmacySchema(svc PharmacyServices) (gql.Schema, error) {
	patientType := gql.NewObject(gql.ObjectConfig{
		Name: "Patient",
		Fields: gql.Fields{
			"id":      &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name":    &gql.Field{Type: gql.String},
			"age":     &gql.Field{Type: gql.Int},
			"gender":  &gql.Field{Type: gql.String},
			"address": &gql.Field{Type: gql.String},
			"phone":   &gql.Field{Type: gql.String},
			"disease": &gql.Field{Type: gql.String},
		},
	})

	medicineType := gql.NewObject(gql.ObjectConfig{
		Name: "Medicine",
		Fields: gql.Fields{
			"id":           &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"patient_id":   &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name":         &gql.Field{Type: gql.String},
			"dosage":       &gql.Field{Type: gql.String},
			"instructions": &gql.Field{Type: gql.String},
			"status":       &gql.Field{Type: gql.String},
			"notes":        &gql.Field{Type: gql.String},
			// Hydrated lazily, one lookup per medicine per query. A
			// null here means the patient is gone or the admin service
			// is unreachable; the medicine row itself is unaffected.
			"patient": &gql.Field{
				Type: patientType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					medicine, ok := p.Source.(*model.Medicine)
					if !ok {
						return nil, nil
					}
					patient := svc.Medicines.ResolvePatient(p.Context, medicine.PatientID)
					if patient == nil {
						return nil, nil
					}
					return patient, nil
				},
			},
		},
	})

	deleteResultType := newDeleteResultType()

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"medicines": &gql.Field{
				Type: gql.NewList(medicineType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Medicines.List(p.Context)
				},
			},
			"medicine": &gql.Field{
				Type: medicineType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					medicine, err := svc.Medicines.Get(p.Context, id)
					if medicine == nil || err != nil {
						return nil, err
					}
					return medicine, nil
				},
			},
		},
	})

	mutationType := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createMedicine": &gql.Field{
				Type: medicineType,
				Args: gql.FieldConfigArgument{
					"patient_id":   &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"name":         &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"dosage":       &gql.ArgumentConfig{Type: gql.String},
					"instructions": &gql.ArgumentConfig{Type: gql.String},
					"status":       &gql.ArgumentConfig{Type: gql.String},
					"notes":        &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					patientID, ok := idArg(p.Args, "patient_id")
					if !ok {
						return nil, fmt.Errorf("invalid patient_id")
					}
					name, _ := p.Args["name"].(string)
					req := &model.CreateMedicineRequest{
						PatientID:    patientID,
						Name:         name,
						Dosage:       stringArg(p.Args, "dosage"),
						Instructions: stringArg(p.Args, "instructions"),
						Status:       stringArg(p.Args, "status"),
						Notes:        stringArg(p.Args, "notes"),
					}
					return svc.Medicines.Create(p.Context, req)
				},
			},
			"updateMedicine": &gql.Field{
				Type: medicineType,
				Args: gql.FieldConfigArgument{
					"id":           &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"patient_id":   &gql.ArgumentConfig{Type: gql.ID},
					"name":         &gql.ArgumentConfig{Type: gql.String},
					"dosage":       &gql.ArgumentConfig{Type: gql.String},
					"instructions": &gql.ArgumentConfig{Type: gql.String},
					"status":       &gql.ArgumentConfig{Type: gql.String},
					"notes":        &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					patientID, err := optionalIDArg(p.Args, "patient_id")
					if err != nil {
						return nil, err
					}
					req := &model.UpdateMedicineRequest{
						PatientID:    patientID,
						Name:         stringArg(p.Args, "name"),
						Dosage:       stringArg(p.Args, "dosage"),
						Instructions: stringArg(p.Args, "instructions"),
						Status:       stringArg(p.Args, "status"),
						Notes:        stringArg(p.Args, "notes"),
					}
					medicine, err := svc.Medicines.Update(p.Context, id, req)
					if medicine == nil || err != nil {
						return nil, err
					}
					return medicine, nil
				},
			},
			"deleteMedicine": &gql.Field{
				Type: deleteResultType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return &model.DeleteResult{
							Status:  model.DeleteStatusNotFound,
							Message: "medicine not found",
						}, nil
					}
					return svc.Medicines.Delete(p.Context, id)
				},
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
