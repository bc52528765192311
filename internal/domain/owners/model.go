package owners

// Owner representa al dueño registrado en la clínica.
// ID es nil hasta que el store lo persiste.
type Owner struct {
	ID *int `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

// IsNew indica si el owner todavía no fue persistido.
func (o Owner) IsNew() bool {
	return o.ID == nil
}

// IntPtr es un helper para armar owners con id en tests y adapters.
func IntPtr(v int) *int {
	return &v
}
