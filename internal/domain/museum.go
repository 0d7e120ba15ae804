package domain

// MuseumInfo is the static venue information shown by the dialog and in the
// confirmation email footer.
type MuseumInfo struct {
	Name    string
	Address string
	Hours   string
	Phone   string
}
