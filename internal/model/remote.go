package model

// RemotePatient is the projection of an admin-service Patient used by the
// pharmacy service. It exists only in responses; no local row backs it.
type RemotePatient struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Age     *int    `json:"age"`
	Gender  *string `json:"gender"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Disease *string `json:"disease"`
}

// RemoteMedicine is the projection of a pharmacy-service Medicine used by
// the admin service.
type RemoteMedicine struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Dosage *string `json:"dosage"`
	Status string  `json:"status"`
}
