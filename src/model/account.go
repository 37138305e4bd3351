package model

// ColEnable is the users column holding the account switch.
const ColEnable = "enable"

// Account is one row of the users table.
type Account struct {
	LoginHash Value `json:"login_hash"`
	// Enable is nil when the source value is NULL or not a boolean.
	Enable *bool `json:"enable,omitempty"`
}

func (Account) TableName() string {
	return "users"
}

// Disabled reports whether the account is explicitly switched off.
func (a Account) Disabled() bool {
	return a.Enable != nil && !*a.Enable
}

// Instrument is one row of the symbols table.
type Instrument struct {
	Symbol Value `json:"symbol"`
}

func (Instrument) TableName() string {
	return "symbols"
}

// Dataset is the immutable snapshot the checks run against.
type Dataset struct {
	Trades      TradeTable   `json:"trades"`
	Accounts    []Account    `json:"accounts"`
	Instruments []Instrument `json:"instruments"`
}
