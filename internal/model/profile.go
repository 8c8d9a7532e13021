package model

// Segment is a deterministic customer classification label.
type Segment string

const (
	SegmentVIP        Segment = "VIP Customer"
	SegmentRegular    Segment = "Regular Customer"
	SegmentOccasional Segment = "Occasional Customer"
	SegmentNew        Segment = "New Customer"
)

// CategoryStat is a product category with the number of the user's orders
// that fall into it.
type CategoryStat struct {
	Category  string
	Frequency int
}

// UserProfile aggregates a user's purchase behavior. Profiles are derived
// on every call from current order rows and never persisted.
type UserProfile struct {
	User               User
	TotalOrders        int
	TotalSpend         float64
	AvgOrderValue      float64
	FavoriteCategories []CategoryStat
	Segment            Segment
}

// FavoriteCategorySet returns the favorite categories as a lookup set.
func (p UserProfile) FavoriteCategorySet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.FavoriteCategories))
	for _, c := range p.FavoriteCategories {
		set[c.Category] = struct{}{}
	}
	return set
}

// CategoryWeight returns the position weight of a category in the user's
// favorites: 3 for the first favorite, 2 for the second, 1 for the third,
// 0 for anything else.
func (p UserProfile) CategoryWeight(category string) int {
	for i, c := range p.FavoriteCategories {
		if c.Category == category {
			return 3 - i
		}
	}
	return 0
}

// ClassifySegment applies the segmentation thresholds to spend and order
// count.
func ClassifySegment(totalSpend float64, totalOrders int) Segment {
	switch {
	case totalSpend >= 1000:
		return SegmentVIP
	case totalSpend >= 100 && totalOrders >= 3:
		return SegmentRegular
	case totalOrders >= 1:
		return SegmentOccasional
	default:
		return SegmentNew
	}
}
