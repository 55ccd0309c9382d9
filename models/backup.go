package models

// Backup is the envelope written by data export and read back on
// import. Collections are optional; absent ones are left untouched.
type Backup struct {
	Products   []Product     `json:"products,omitempty"`
	Categories []Category    `json:"categories,omitempty"`
	Orders     []Order       `json:"orders,omitempty"`
	Settings   *CafeSettings `json:"settings,omitempty"`
	Timestamp  string        `json:"timestamp"`
}
