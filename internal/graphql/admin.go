package graphql

import (
	"context"
	"fmt"

	gql "github.com/graphql-go/graphql"

	"github.com/medisuite/hospital-services/internal/model"
	appointmentsvc "github.com/medisuite/hospital-services/internal/service/appointment"
	doctorsvc "github.com/medisuite/hospital-services/internal/service/doctor"
	patientsvc "github.com/medisuite/hospital-services/internal/service/patient"
	recordsvc "github.com/medisuite/hospital-services/internal/service/record"
)

// MedicineSource is the admin-side view into the pharmacy service.
type MedicineSource interface {
	FetchMedicines(ctx context.Context) []*model.RemoteMedicine
}

// AdminServices bundles everything the admin schema resolves against.
type AdminServices struct {
	Patients     patientsvc.PatientService
	Doctors      doctorsvc.DoctorService
	Records      recordsvc.RecordService
	Appointments appointmentsvc.AppointmentService
	Pharmacy     MedicineSource
}

// NewAdminSchema builds the admin service's GraphQL schema: CRUD for
// patients, doctors, records and appointments, plus the cross-service
// medicines query.
func NewAdminSchema(svc AdminServices) (gql.Schema, error) {
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

	doctorType := gql.NewObject(gql.ObjectConfig{
		Name: "Doctor",
		Fields: gql.Fields{
			"id":             &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name":           &gql.Field{Type: gql.String},
			"specialization": &gql.Field{Type: gql.String},
			"phone":          &gql.Field{Type: gql.String},
			"email":          &gql.Field{Type: gql.String},
		},
	})

	recordType := gql.NewObject(gql.ObjectConfig{
		Name: "Record",
		Fields: gql.Fields{
			"id":         &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"patient_id": &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"doctor_id":  &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"diagnosis":  &gql.Field{Type: gql.String},
			"treatment":  &gql.Field{Type: gql.String},
			"notes":      &gql.Field{Type: gql.String},
		},
	})

	appointmentType := gql.NewObject(gql.ObjectConfig{
		Name: "Appointment",
		Fields: gql.Fields{
			"id":         &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"patient_id": &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"doctor_id":  &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"date":       &gql.Field{Type: gql.String},
			"time":       &gql.Field{Type: gql.String},
			"status":     &gql.Field{Type: gql.String},
		},
	})

	// Relation fields are added afterwards to break the type cycles.
	patientType.AddFieldConfig("records", &gql.Field{Type: gql.NewList(recordType)})
	patientType.AddFieldConfig("appointments", &gql.Field{Type: gql.NewList(appointmentType)})
	doctorType.AddFieldConfig("appointments", &gql.Field{Type: gql.NewList(appointmentType)})
	recordType.AddFieldConfig("patient", &gql.Field{Type: patientType})
	recordType.AddFieldConfig("doctor", &gql.Field{Type: doctorType})
	appointmentType.AddFieldConfig("patient", &gql.Field{Type: patientType})
	appointmentType.AddFieldConfig("doctor", &gql.Field{Type: doctorType})

	medicineType := gql.NewObject(gql.ObjectConfig{
		Name: "Medicine",
		Fields: gql.Fields{
			"id":     &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name":   &gql.Field{Type: gql.String},
			"dosage": &gql.Field{Type: gql.String},
			"status": &gql.Field{Type: gql.String},
		},
	})

	deleteResultType := newDeleteResultType()

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"patients": &gql.Field{
				Type: gql.NewList(patientType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Patients.List(p.Context)
				},
			},
			"patient": &gql.Field{
				Type: patientType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					patient, err := svc.Patients.Get(p.Context, id)
					if patient == nil || err != nil {
						return nil, err
					}
					return patient, nil
				},
			},
			"doctors": &gql.Field{
				Type: gql.NewList(doctorType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Doctors.List(p.Context)
				},
			},
			"doctor": &gql.Field{
				Type: doctorType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					doctor, err := svc.Doctors.Get(p.Context, id)
					if doctor == nil || err != nil {
						return nil, err
					}
					return doctor, nil
				},
			},
			"records": &gql.Field{
				Type: gql.NewList(recordType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Records.List(p.Context)
				},
			},
			"record": &gql.Field{
				Type: recordType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					record, err := svc.Records.Get(p.Context, id)
					if record == nil || err != nil {
						return nil, err
					}
					return record, nil
				},
			},
			"appointments": &gql.Field{
				Type: gql.NewList(appointmentType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Appointments.List(p.Context)
				},
			},
			"appointment": &gql.Field{
				Type: appointmentType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					appointment, err := svc.Appointments.Get(p.Context, id)
					if appointment == nil || err != nil {
						return nil, err
					}
					return appointment, nil
				},
			},
			"medicinesFromPharmacy": &gql.Field{
				Type: gql.NewList(medicineType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return svc.Pharmacy.FetchMedicines(p.Context), nil
				},
			},
		},
	})

	mutationType := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createPatient": &gql.Field{
				Type: patientType,
				Args: gql.FieldConfigArgument{
					"name":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"age":     &gql.ArgumentConfig{Type: gql.Int},
					"gender":  &gql.ArgumentConfig{Type: gql.String},
					"address": &gql.ArgumentConfig{Type: gql.String},
					"phone":   &gql.ArgumentConfig{Type: gql.String},
					"disease": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)
					req := &model.CreatePatientRequest{
						Name:    name,
						Age:     intArg(p.Args, "age"),
						Gender:  stringArg(p.Args, "gender"),
						Address: stringArg(p.Args, "address"),
						Phone:   stringArg(p.Args, "phone"),
						Disease: stringArg(p.Args, "disease"),
					}
					return svc.Patients.Create(p.Context, req)
				},
			},
			"updatePatient": &gql.Field{
				Type: patientType,
				Args: gql.FieldConfigArgument{
					"id":      &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"name":    &gql.ArgumentConfig{Type: gql.String},
					"age":     &gql.ArgumentConfig{Type: gql.Int},
					"gender":  &gql.ArgumentConfig{Type: gql.String},
					"address": &gql.ArgumentConfig{Type: gql.String},
					"phone":   &gql.ArgumentConfig{Type: gql.String},
					"disease": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					req := &model.UpdatePatientRequest{
						Name:    stringArg(p.Args, "name"),
						Age:     intArg(p.Args, "age"),
						Gender:  stringArg(p.Args, "gender"),
						Address: stringArg(p.Args, "address"),
						Phone:   stringArg(p.Args, "phone"),
						Disease: stringArg(p.Args, "disease"),
					}
					patient, err := svc.Patients.Update(p.Context, id, req)
					if patient == nil || err != nil {
						return nil, err
					}
					return patient, nil
				},
			},
			"deletePatient": &gql.Field{
				Type: deleteResultType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return &model.DeleteResult{
							Status:  model.DeleteStatusNotFound,
							Message: "patient not found",
						}, nil
					}
					return svc.Patients.Delete(p.Context, id)
				},
			},
			"createDoctor": &gql.Field{
				Type: doctorType,
				Args: gql.FieldConfigArgument{
					"name":           &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"specialization": &gql.ArgumentConfig{Type: gql.String},
					"phone":          &gql.ArgumentConfig{Type: gql.String},
					"email":          &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)
					req := &model.CreateDoctorRequest{
						Name:           name,
						Specialization: stringArg(p.Args, "specialization"),
						Phone:          stringArg(p.Args, "phone"),
						Email:          stringArg(p.Args, "email"),
					}
					return svc.Doctors.Create(p.Context, req)
				},
			},
			"updateDoctor": &gql.Field{
				Type: doctorType,
				Args: gql.FieldConfigArgument{
					"id":             &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"name":           &gql.ArgumentConfig{Type: gql.String},
					"specialization": &gql.ArgumentConfig{Type: gql.String},
					"phone":          &gql.ArgumentConfig{Type: gql.String},
					"email":          &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					req := &model.UpdateDoctorRequest{
						Name:           stringArg(p.Args, "name"),
						Specialization: stringArg(p.Args, "specialization"),
						Phone:          stringArg(p.Args, "phone"),
						Email:          stringArg(p.Args, "email"),
					}
					doctor, err := svc.Doctors.Update(p.Context, id, req)
					if doctor == nil || err != nil {
						return nil, err
					}
					return doctor, nil
				},
			},
			"deleteDoctor": &gql.Field{
				Type: deleteResultType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return &model.DeleteResult{
							Status:  model.DeleteStatusNotFound,
							Message: "doctor not found",
						}, nil
					}
					return svc.Doctors.Delete(p.Context, id)
				},
			},
			"createRecord": &gql.Field{
				Type: recordType,
				Args: gql.FieldConfigArgument{
					"patient_id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"doctor_id":  &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"diagnosis":  &gql.ArgumentConfig{Type: gql.String},
					"treatment":  &gql.ArgumentConfig{Type: gql.String},
					"notes":      &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					patientID, ok := idArg(p.Args, "patient_id")
					if !ok {
						return nil, fmt.Errorf("invalid patient_id")
					}
					doctorID, ok := idArg(p.Args, "doctor_id")
					if !ok {
						return nil, fmt.Errorf("invalid doctor_id")
					}
					req := &model.CreateRecordRequest{
						PatientID: patientID,
						DoctorID:  doctorID,
						Diagnosis: stringArg(p.Args, "diagnosis"),
						Treatment: stringArg(p.Args, "treatment"),
						Notes:     stringArg(p.Args, "notes"),
					}
					return svc.Records.Create(p.Context, req)
				},
			},
			"updateRecord": &gql.Field{
				Type: recordType,
				Args: gql.FieldConfigArgument{
					"id":         &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"patient_id": &gql.ArgumentConfig{Type: gql.ID},
					"doctor_id":  &gql.ArgumentConfig{Type: gql.ID},
					"diagnosis":  &gql.ArgumentConfig{Type: gql.String},
					"treatment":  &gql.ArgumentConfig{Type: gql.String},
					"notes":      &gql.ArgumentConfig{Type: gql.String},
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
					doctorID, err := optionalIDArg(p.Args, "doctor_id")
					if err != nil {
						return nil, err
					}
					req := &model.UpdateRecordRequest{
						PatientID: patientID,
						DoctorID:  doctorID,
						Diagnosis: stringArg(p.Args, "diagnosis"),
						Treatment: stringArg(p.Args, "treatment"),
						Notes:     stringArg(p.Args, "notes"),
					}
					record, err := svc.Records.Update(p.Context, id, req)
					if record == nil || err != nil {
						return nil, err
					}
					return record, nil
				},
			},
			"deleteRecord": &gql.Field{
				Type: deleteResultType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return &model.DeleteResult{
							Status:  model.DeleteStatusNotFound,
							Message: "record not found",
						}, nil
					}
					return svc.Records.Delete(p.Context, id)
				},
			},
			"createAppointment": &gql.Field{
				Type: appointmentType,
				Args: gql.FieldConfigArgument{
					"patient_id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"doctor_id":  &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"date":       &gql.ArgumentConfig{Type: gql.String},
					"time":       &gql.ArgumentConfig{Type: gql.String},
					"status":     &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					patientID, ok := idArg(p.Args, "patient_id")
					if !ok {
						return nil, fmt.Errorf("invalid patient_id")
					}
					doctorID, ok := idArg(p.Args, "doctor_id")
					if !ok {
						return nil, fmt.Errorf("invalid doctor_id")
					}
					req := &model.CreateAppointmentRequest{
						PatientID: patientID,
						DoctorID:  doctorID,
						Date:      stringArg(p.Args, "date"),
						Time:      stringArg(p.Args, "time"),
						Status:    stringArg(p.Args, "status"),
					}
					return svc.Appointments.Create(p.Context, req)
				},
			},
			"updateAppointment": &gql.Field{
				Type: appointmentType,
				Args: gql.FieldConfigArgument{
					"id":         &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"patient_id": &gql.ArgumentConfig{Type: gql.ID},
					"doctor_id":  &gql.ArgumentConfig{Type: gql.ID},
					"date":       &gql.ArgumentConfig{Type: gql.String},
					"time":       &gql.ArgumentConfig{Type: gql.String},
					"status":     &gql.ArgumentConfig{Type: gql.String},
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
					doctorID, err := optionalIDArg(p.Args, "doctor_id")
					if err != nil {
						return nil, err
					}
					req := &model.UpdateAppointmentRequest{
						PatientID: patientID,
						DoctorID:  doctorID,
						Date:      stringArg(p.Args, "date"),
						Time:      stringArg(p.Args, "time"),
						Status:    stringArg(p.Args, "status"),
					}
					appointment, err := svc.Appointments.Update(p.Context, id, req)
					if appointment == nil || err != nil {
						return nil, err
					}
					return appointment, nil
				},
			},
			"deleteAppointment": &gql.Field{
				Type: deleteResultType,
				Args: idOnlyArgs(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, ok := idArg(p.Args, "id")
					if !ok {
						return &model.DeleteResult{
							Status:  model.DeleteStatusNotFound,
							Message: "appointment not found",
						}, nil
					}
					return svc.Appointments.Delete(p.Context, id)
				},
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func idOnlyArgs() gql.FieldConfigArgument {
	return gql.FieldConfigArgument{
		"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
	}
}
