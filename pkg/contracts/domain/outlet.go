package domain

// Metric names as they appear in the Particulars column of outlet P&L
// exports. These twelve labels are a fixed contract with downstream
// consumers and must not be renamed.
const (
	MetricDirectIncome          = "Direct Income"
	MetricTotalRevenue          = "TOTAL REVENUE"
	MetricCOGS                  = "COGS"
	MetricOutletExpenses        = "Outlet Expenses"
	MetricEBIDTA                = "EBIDTA"
	MetricFinanceCost           = "Finance Cost"
	MetricBankCharges           = "01-Bank Charges"
	MetricInterestOnBorrowings  = "02-Interest on Borrowings"
	MetricInterestOnVehicleLoan = "03-Interest on Vehicle Loan"
	MetricMG                    = "04-MG"
	MetricPBT                   = "PBT"
	MetricWastage               = "WASTAGE"
)

// RequiredMetrics lists the twelve metric rows every output record carries,
// in output order.
var RequiredMetrics = []string{
	MetricDirectIncome,
	MetricTotalRevenue,
	MetricCOGS,
	MetricOutletExpenses,
	MetricEBIDTA,
	MetricFinanceCost,
	MetricBankCharges,
	MetricInterestOnBorrowings,
	MetricInterestOnVehicleLoan,
	MetricMG,
	MetricPBT,
	MetricWastage,
}

// OutputColumns is the fixed column order of the output table: the three
// label columns followed by the twelve metrics.
var OutputColumns = append([]string{"Outlet", "Outlet Manager", "Month"}, RequiredMetrics...)

// OutletRecord is one extracted row of the output table: a single outlet's
// figures for a single month. Metric fields are pointers so that an absent
// value serializes as JSON null rather than being omitted; every column is
// always present in the marshaled form, in contract order.
type OutletRecord struct {
	Outlet                string   `json:"Outlet"`
	OutletManager         string   `json:"Outlet Manager"`
	Month                 string   `json:"Month"`
	DirectIncome          *float64 `json:"Direct Income"`
	TotalRevenue          *float64 `json:"TOTAL REVENUE"`
	COGS                  *float64 `json:"COGS"`
	OutletExpenses        *float64 `json:"Outlet Expenses"`
	EBIDTA                *float64 `json:"EBIDTA"`
	FinanceCost           *float64 `json:"Finance Cost"`
	BankCharges           *float64 `json:"01-Bank Charges"`
	InterestOnBorrowings  *float64 `json:"02-Interest on Borrowings"`
	InterestOnVehicleLoan *float64 `json:"03-Interest on Vehicle Loan"`
	MG                    *float64 `json:"04-MG"`
	PBT                   *float64 `json:"PBT"`
	Wastage               *float64 `json:"WASTAGE"`
}

// Metric returns the value stored under the given contract metric name.
func (r *OutletRecord) Metric(name string) *float64 {
	switch name {
	case MetricDirectIncome:
		return r.DirectIncome
	case MetricTotalRevenue:
		return r.TotalRevenue
	case MetricCOGS:
		return r.COGS
	case MetricOutletExpenses:
		return r.OutletExpenses
	case MetricEBIDTA:
		return r.EBIDTA
	case MetricFinanceCost:
		return r.FinanceCost
	case MetricBankCharges:
		return r.BankCharges
	case MetricInterestOnBorrowings:
		return r.InterestOnBorrowings
	case MetricInterestOnVehicleLoan:
		return r.InterestOnVehicleLoan
	case MetricMG:
		return r.MG
	case MetricPBT:
		return r.PBT
	case MetricWastage:
		return r.Wastage
	}
	return nil
}

// SetMetric stores a value under the given contract metric name. Unknown
// names are ignored and reported as false.
func (r *OutletRecord) SetMetric(name string, value *float64) bool {
	switch name {
	case MetricDirectIncome:
		r.DirectIncome = value
	case MetricTotalRevenue:
		r.TotalRevenue = value
	case MetricCOGS:
		r.COGS = value
	case MetricEBIDTA:
		r.EBIDTA = value
	case MetricOutletExpenses:
		r.OutletExpenses = value
	case MetricFinanceCost:
		r.FinanceCost = value
	case MetricBankCharges:
		r.BankCharges = value
	case MetricInterestOnBorrowings:
		r.InterestOnBorrowings = value
	case MetricInterestOnVehicleLoan:
		r.InterestOnVehicleLoan = value
	case MetricMG:
		r.MG = value
	case MetricPBT:
		r.PBT = value
	case MetricWastage:
		r.Wastage = value
	default:
		return false
	}
	return true
}

// Float is a convenience for building metric values in literals and tests.
func Float(v float64) *float64 {
	return &v
}
