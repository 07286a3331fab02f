package enums

import "fmt"

// ProductSort selects the ordering of product listings. The zero value keeps
// the default newest-first order.
type ProductSort string

const (
	ProductSortDefault   ProductSort = ""
	ProductSortPriceAsc  ProductSort = "price_asc"
	ProductSortPriceDesc ProductSort = "price_desc"
	ProductSortStockAsc  ProductSort = "stock_asc"
	ProductSortStockDesc ProductSort = "stock_desc"
)

var validProductSorts = []ProductSort{
	ProductSortDefault,
	ProductSortPriceAsc,
	ProductSortPriceDesc,
	ProductSortStockAsc,
	ProductSortStockDesc,
}

func (s ProductSort) String() string {
	return string(s)
}

func (s ProductSort) IsValid() bool {
	for _, candidate := range validProductSorts {
		if candidate == s {
			return true
		}
	}
	return false
}

// OrderClause returns the SQL ordering for the sort key, always tie-broken by id.
func (s ProductSort) OrderClause() string {
	switch s {
	case ProductSortPriceAsc:
		return "price ASC, id DESC"
	case ProductSortPriceDesc:
		return "price DESC, id DESC"
	case ProductSortStockAsc:
		return "stock ASC, id DESC"
	case ProductSortStockDesc:
		return "stock DESC, id DESC"
	default:
		return "id DESC"
	}
}

// ParseProductSort converts raw input into a ProductSort.
func ParseProductSort(value string) (ProductSort, error) {
	for _, candidate := range validProductSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product sort %q", value)
}
