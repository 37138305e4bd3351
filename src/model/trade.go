package model

// Column names of the trades table.
const (
	ColTicketHash   = "ticket_hash"
	ColLoginHash    = "login_hash"
	ColSymbol       = "symbol"
	ColDigits       = "digits"
	ColCmd          = "cmd"
	ColVolume       = "volume"
	ColOpenPrice    = "open_price"
	ColContractSize = "contractsize"
	ColOpenTime     = "open_time"
	ColCloseTime    = "close_time"
)

// NumericTradeColumns are the trade columns expected to carry numbers.
var NumericTradeColumns = []string{ColDigits, ColCmd, ColVolume, ColOpenPrice, ColContractSize}

// Trade is one row of the trades table. Everything except the ticket is kept
// raw so malformed content can be reported instead of rejected at load time.
type Trade struct {
	TicketHash   Value  `json:"ticket_hash"`
	LoginHash    Value  `json:"login_hash"`
	Symbol       Value  `json:"symbol"`
	Digits       Value  `json:"digits"`
	Cmd          Value  `json:"cmd"`
	Volume       Value  `json:"volume"`
	OpenPrice    Value  `json:"open_price"`
	ContractSize Value  `json:"contractsize"`
	OpenTime     Value  `json:"open_time"`
	CloseTime    Value  `json:"close_time"`
}

func (Trade) TableName() string {
	return "trades"
}

// Field returns the cell stored under the given column name.
func (t Trade) Field(column string) (Value, bool) {
	switch column {
	case ColTicketHash:
		return t.TicketHash, true
	case ColLoginHash:
		return t.LoginHash, true
	case ColSymbol:
		return t.Symbol, true
	case ColDigits:
		return t.Digits, true
	case ColCmd:
		return t.Cmd, true
	case ColVolume:
		return t.Volume, true
	case ColOpenPrice:
		return t.OpenPrice, true
	case ColContractSize:
		return t.ContractSize, true
	case ColOpenTime:
		return t.OpenTime, true
	case ColCloseTime:
		return t.CloseTime, true
	default:
		return Value{}, false
	}
}

// TradeTable holds the trade rows in source order along with how each column is stored.
type TradeTable struct {
	Kinds map[string]ColumnKind `json:"kinds"`
	Rows  []Trade               `json:"rows"`
}

func (t TradeTable) Kind(column string) ColumnKind {
	if k, ok := t.Kinds[column]; ok {
		return k
	}
	return KindUnknown
}
