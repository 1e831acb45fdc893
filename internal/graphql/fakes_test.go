package graphql

import (
	"context"
	"sort"
	"sync"

	"github.com/medisuite/hospital-services/internal/model"
)

// In-memory repositories backing the schema tests. They mirror the
// store contract: Get returns (nil, nil) on a miss, Update and Delete
// report rows affected.

type fakePatientRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{rows: make(map[int64]model.Patient)}
}

func (r *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.rows[p.ID] = *p
	return nil
}

func (r *fakePatientRepo) Get(_ context.Context, id int64) (*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *fakePatientRepo) List(_ context.Context) ([]*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Patient, 0, len(r.rows))
	for id := range r.rows {
		row := r.rows[id]
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePatientRepo) ListByIDs(_ context.Context, ids []int64) ([]*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Patient, 0, len(ids))
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			row := row
			out = append(out, &row)
		}
	}
	return out, nil
}

func (r *fakePatientRepo) Update(_ context.Context, id int64, req *model.UpdatePatientRequest) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return 0, nil
	}
	if req.Name != nil {
		row.Name = *req.Name
	}
	if req.Age != nil {
		row.Age = req.Age
	}
	if req.Gender != nil {
		row.Gender = req.Gender
	}
	if req.Address != nil {
		row.Address = req.Address
	}
	if req.Phone != nil {
		row.Phone = req.Phone
	}
	if req.Disease != nil {
		row.Disease = req.Disease
	}
	r.rows[id] = row
	return 1, nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

type fakeDoctorRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{rows: make(map[int64]model.Doctor)}
}

func (r *fakeDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	d.ID = r.nextID
	r.rows[d.ID] = *d
	return nil
}

func (r *fakeDoctorRepo) Get(_ context.Context, id int64) (*model.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *fakeDoctorRepo) List(_ context.Context) ([]*model.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Doctor, 0, len(r.rows))
	for id := range r.rows {
		row := r.rows[id]
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDoctorRepo) ListByIDs(_ context.Context, ids []int64) ([]*model.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Doctor, 0, len(ids))
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			row := row
			out = append(out, &row)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) Update(_ context.Context, id int64, req *model.UpdateDoctorRequest) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return 0, nil
	}
	if req.Name != nil {
		row.Name = *req.Name
	}
	if req.Specialization != nil {
		row.Specialization = req.Specialization
	}
	if req.Phone != nil {
		row.Phone = req.Phone
	}
	if req.Email != nil {
		row.Email = req.Email
	}
	r.rows[id] = row
	return 1, nil
}

func (r *fakeDoctorRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

type fakeRecordRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Record
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{rows: make(map[int64]model.Record)}
}

func (r *fakeRecordRepo) Create(_ context.Context, rec *model.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	r.rows[rec.ID] = *rec
	return nil
}

func (r *fakeRecordRepo) Get(_ context.Context, id int64) (*model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *fakeRecordRepo) List(_ context.Context) ([]*model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Record, 0, len(r.rows))
	for id := range r.rows {
		row := r.rows[id]
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRecordRepo) ListByPatients(_ context.Context, patientIDs []int64) ([]*model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[int64]bool, len(patientIDs))
	for _, id := range patientIDs {
		wanted[id] = true
	}
	var out []*model.Record
	for id := range r.rows {
		row := r.rows[id]
		if wanted[row.PatientID] {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRecordRepo) Update(_ context.Context, id int64, req *model.UpdateRecordRequest) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return 0, nil
	}
	if req.PatientID != nil {
		row.PatientID = *req.PatientID
	}
	if req.DoctorID != nil {
		row.DoctorID = *req.DoctorID
	}
	if req.Diagnosis != nil {
		row.Diagnosis = req.Diagnosis
	}
	if req.Treatment != nil {
		row.Treatment = req.Treatment
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}
	r.rows[id] = row
	return 1, nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *fakeRecordRepo) DeleteByPatient(_ context.Context, patientID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id := range r.rows {
		if r.rows[id].PatientID == patientID {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

type fakeAppointmentRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{rows: make(map[int64]model.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	a.ID = r.nextID
	r.rows[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) Get(_ context.Context, id int64) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *fakeAppointmentRepo) List(_ context.Context) ([]*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Appointment, 0, len(r.rows))
	for id := range r.rows {
		row := r.rows[id]
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAppointmentRepo) ListByPatients(_ context.Context, patientIDs []int64) ([]*model.Appointment, error) {
	return r.listBy(patientIDs, func(a model.Appointment) int64 { return a.PatientID })
}

func (r *fakeAppointmentRepo) ListByDoctors(_ context.Context, doctorIDs []int64) ([]*model.Appointment, error) {
	return r.listBy(doctorIDs, func(a model.Appointment) int64 { return a.DoctorID })
}

func (r *fakeAppointmentRepo) listBy(ids []int64, key func(model.Appointment) int64) ([]*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*model.Appointment
	for id := range r.rows {
		row := r.rows[id]
		if wanted[key(row)] {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, id int64, req *model.UpdateAppointmentRequest) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return 0, nil
	}
	if req.PatientID != nil {
		row.PatientID = *req.PatientID
	}
	if req.DoctorID != nil {
		row.DoctorID = *req.DoctorID
	}
	if req.Date != nil {
		row.Date = req.Date
	}
	if req.Time != nil {
		row.Time = req.Time
	}
	if req.Status != nil {
		row.Status = *req.Status
	}
	r.rows[id] = row
	return 1, nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *fakeAppointmentRepo) DeleteByPatient(_ context.Context, patientID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id := range r.rows {
		if r.rows[id].PatientID == patientID {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

type fakeMedicineRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Medicine
}

func newFakeMedicineRepo() *fakeMedicineRepo {
	return &fakeMedicineRepo{rows: make(map[int64]model.Medicine)}
}

func (r *fakeMedicineRepo) Create(_ context.Context, m *model.Medicine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	r.rows[m.ID] = *m
	return nil
}

func (r *fakeMedicineRepo) Get(_ context.Context, id int64) (*model.Medicine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *fakeMedicineRepo) List(_ context.Context) ([]*model.Medicine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Medicine, 0, len(r.rows))
	for id := range r.rows {
		row := r.rows[id]
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMedicineRepo) Update(_ context.Context, id int64, req *model.UpdateMedicineRequest) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return 0, nil
	}
	if req.PatientID != nil {
		row.PatientID = *req.PatientID
	}
	if req.Name != nil {
		row.Name = *req.Name
	}
	if req.Dosage != nil {
		row.Dosage = req.Dosage
	}
	if req.Instructions != nil {
		row.Instructions = req.Instructions
	}
	if req.Status != nil {
		row.Status = *req.Status
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}
	r.rows[id] = row
	return 1, nil
}

func (r *fakeMedicineRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *fakeMedicineRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// fakeResolver stands in for the admin service in pharmacy tests.
type fakeResolver struct {
	mu       sync.Mutex
	patients map[string]*model.RemotePatient
	calls    int
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{patients: make(map[string]*model.RemotePatient)}
}

func (f *fakeResolver) add(p *model.RemotePatient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patients[p.ID] = p
}

func (f *fakeResolver) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.patients, id)
}

func (f *fakeResolver) Resolve(_ context.Context, id string) *model.RemotePatient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.patients[id]
}

func (f *fakeResolver) ResolveMany(_ context.Context, ids []string) []*model.RemotePatient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := make([]*model.RemotePatient, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.patients[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeResolver) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeMedicineSource stands in for the pharmacy service in admin tests.
type fakeMedicineSource struct {
	medicines []*model.RemoteMedicine
}

func (f *fakeMedicineSource) FetchMedicines(_ context.Context) []*model.RemoteMedicine {
	if f.medicines == nil {
		return []*model.RemoteMedicine{}
	}
	return f.medicines
}
