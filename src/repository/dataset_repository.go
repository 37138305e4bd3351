package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tradequality/src/model"
)

var (
	tradeColumns = []string{
		model.ColTicketHash,
		model.ColLoginHash,
		model.ColSymbol,
		model.ColDigits,
		model.ColCmd,
		model.ColVolume,
		model.ColOpenPrice,
		model.ColContractSize,
		model.ColOpenTime,
		model.ColCloseTime,
	}
	accountColumns    = []string{model.ColLoginHash, model.ColEnable}
	instrumentColumns = []string{model.ColSymbol}
)

// DatasetRepository reads the trades, users and symbols tables into memory.
type DatasetRepository struct {
	db     *gorm.DB
	tables Config
}

func NewDatasetRepository(db *gorm.DB, tables Config) *DatasetRepository {
	if tables.TradesTable == "" {
		tables.TradesTable = model.Trade{}.TableName()
	}
	if tables.UsersTable == "" {
		tables.UsersTable = model.Account{}.TableName()
	}
	if tables.SymbolsTable == "" {
		tables.SymbolsTable = model.Instrument{}.TableName()
	}
	return &DatasetRepository{db: db, tables: tables}
}

// Load materializes the three tables. Any failure aborts the whole load.
func (r *DatasetRepository) Load(ctx context.Context) (*model.Dataset, error) {
	trades, err := r.LoadTrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	accounts, err := r.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	instruments, err := r.LoadInstruments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load symbols: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"trades":      len(trades.Rows),
		"users":       len(accounts),
		"symbols":     len(instruments),
		"tradesTable": r.tables.TradesTable,
	}).Info("Data loaded successfully")

	return &model.Dataset{
		Trades:      trades,
		Accounts:    accounts,
		Instruments: instruments,
	}, nil
}

func (r *DatasetRepository) LoadTrades(ctx context.Context) (model.TradeTable, error) {
	raw, err := selectAll(ctx, r.db, r.tables.TradesTable)
	if err != nil {
		return model.TradeTable{}, err
	}
	if err := raw.require(tradeColumns...); err != nil {
		return model.TradeTable{}, err
	}

	table := model.TradeTable{
		Kinds: make(map[string]model.ColumnKind, len(tradeColumns)),
		Rows:  make([]model.Trade, 0, len(raw.rows)),
	}
	for _, c := range tradeColumns {
		table.Kinds[c] = raw.kind(c)
	}

	for _, row := range raw.rows {
		table.Rows = append(table.Rows, model.Trade{
			TicketHash:   raw.value(row, model.ColTicketHash),
			LoginHash:    raw.value(row, model.ColLoginHash),
			Symbol:       raw.value(row, model.ColSymbol),
			Digits:       raw.value(row, model.ColDigits),
			Cmd:          raw.value(row, model.ColCmd),
			Volume:       raw.value(row, model.ColVolume),
			OpenPrice:    raw.value(row, model.ColOpenPrice),
			ContractSize: raw.value(row, model.ColContractSize),
			OpenTime:     raw.value(row, model.ColOpenTime),
			CloseTime:    raw.value(row, model.ColCloseTime),
		})
	}
	return table, nil
}

func (r *DatasetRepository) LoadAccounts(ctx context.Context) ([]model.Account, error) {
	raw, err := selectAll(ctx, r.db, r.tables.UsersTable)
	if err != nil {
		return nil, err
	}
	if err := raw.require(accountColumns...); err != nil {
		return nil, err
	}

	accounts := make([]model.Account, 0, len(raw.rows))
	for _, row := range raw.rows {
		accounts = append(accounts, model.Account{
			LoginHash: raw.value(row, model.ColLoginHash),
			Enable:    parseEnable(raw.value(row, model.ColEnable)),
		})
	}
	return accounts, nil
}

func (r *DatasetRepository) LoadInstruments(ctx context.Context) ([]model.Instrument, error) {
	raw, err := selectAll(ctx, r.db, r.tables.SymbolsTable)
	if err != nil {
		return nil, err
	}
	if err := raw.require(instrumentColumns...); err != nil {
		return nil, err
	}

	instruments := make([]model.Instrument, 0, len(raw.rows))
	for _, row := range raw.rows {
		instruments = append(instruments, model.Instrument{Symbol: raw.value(row, model.ColSymbol)})
	}
	return instruments, nil
}

// parseEnable accepts the usual boolean spellings, including 0/1 integer flags.
func parseEnable(v model.Value) *bool {
	if !v.Valid {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.Raw))
	if err != nil {
		return nil
	}
	return &b
}
