package entities

// AppointmentEmailData is the payload rendered into confirmation and
// reminder messages.
type AppointmentEmailData struct {
	PatientName   string
	DoctorName    string
	Kind          string
	TimeFormatted string
	CurrentYear   int
	Status        string
}
