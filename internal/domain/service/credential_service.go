package service

// CredentialService issues the hostel-facing identity for a newly approved
// resident: the human-readable pgId and a one-time temporary password.
type CredentialService interface {
	// GeneratePGID derives a resident identifier of the form
	// "PG-" + initials + four digits from the resident's email address.
	GeneratePGID(email string) string

	// GenerateTempPassword produces a random one-time password that the
	// resident must change on first login.
	GenerateTempPassword() (string, error)
}
