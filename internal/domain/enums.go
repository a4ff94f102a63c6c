package domain

// ServiceType is the style of venue a cast works at. The set is closed.
type ServiceType string

const (
	ServiceTypeKyaba    ServiceType = "KYABA"
	ServiceTypeGirlsBar ServiceType = "GIRLS_BAR"
	ServiceTypeSnack    ServiceType = "SNACK"
	ServiceTypeLounge   ServiceType = "LOUNGE"
	ServiceTypeClub     ServiceType = "CLUB"
	ServiceTypeOther    ServiceType = "OTHER"
)

// ServiceTypes lists every ServiceType in display order.
var ServiceTypes = []ServiceType{
	ServiceTypeKyaba,
	ServiceTypeGirlsBar,
	ServiceTypeSnack,
	ServiceTypeLounge,
	ServiceTypeClub,
	ServiceTypeOther,
}

var serviceTypeLabels = map[ServiceType]string{
	ServiceTypeKyaba:    "キャバクラ",
	ServiceTypeGirlsBar: "ガールズバー",
	ServiceTypeSnack:    "スナック",
	ServiceTypeLounge:   "ラウンジ",
	ServiceTypeClub:     "クラブ",
	ServiceTypeOther:    "その他",
}

// Valid reports whether s is one of the known service types.
func (s ServiceType) Valid() bool {
	_, ok := serviceTypeLabels[s]
	return ok
}

// Label returns the display label, or "" for an unknown value.
func (s ServiceType) Label() string {
	return serviceTypeLabels[s]
}

// BudgetRange is the price band a cast falls into. The set is closed and
// ordered from cheapest to most expensive.
type BudgetRange string

const (
	BudgetUnder10K     BudgetRange = "UNDER_10K"
	BudgetFrom10KTo20K BudgetRange = "FROM_10K_TO_20K"
	BudgetFrom20KTo30K BudgetRange = "FROM_20K_TO_30K"
	BudgetFrom30KTo50K BudgetRange = "FROM_30K_TO_50K"
	BudgetOver50K      BudgetRange = "OVER_50K"
)

// BudgetRanges lists every BudgetRange in ascending order.
var BudgetRanges = []BudgetRange{
	BudgetUnder10K,
	BudgetFrom10KTo20K,
	BudgetFrom20KTo30K,
	BudgetFrom30KTo50K,
	BudgetOver50K,
}

var budgetRangeLabels = map[BudgetRange]string{
	BudgetUnder10K:     "〜1万円",
	BudgetFrom10KTo20K: "1万円〜2万円",
	BudgetFrom20KTo30K: "2万円〜3万円",
	BudgetFrom30KTo50K: "3万円〜5万円",
	BudgetOver50K:      "5万円〜",
}

// Valid reports whether b is one of the known budget ranges.
func (b BudgetRange) Valid() bool {
	_, ok := budgetRangeLabels[b]
	return ok
}

// Label returns the display label, or "" for an unknown value.
func (b BudgetRange) Label() string {
	return budgetRangeLabels[b]
}

// Rank returns the position of b in BudgetRanges, or -1 if unknown.
func (b BudgetRange) Rank() int {
	for i, r := range BudgetRanges {
		if r == b {
			return i
		}
	}
	return -1
}
