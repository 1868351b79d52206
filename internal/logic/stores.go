package logic

import (
	"sync"

	"procura/internal/domain"
)

// MemoryDataSource is an in-memory implementation of DataSource
type MemoryDataSource struct {
	mu        sync.RWMutex
	data      domain.Dataset
	vendorIdx map[string]int
	itemIdx   map[string]int
}

var _ DataSource = (*MemoryDataSource)(nil)

// NewMemoryDataSource creates a data source over a snapshot of ds
func NewMemoryDataSource(ds domain.Dataset) *MemoryDataSource {
	s := &MemoryDataSource{
		data: domain.Dataset{
			Vendors:   append([]domain.Vendor(nil), ds.Vendors...),
			Items:     append([]domain.Item(nil), ds.Items...),
			Offers:    append([]domain.Offer(nil), ds.Offers...),
			Purchases: append([]domain.Purchase(nil), ds.Purchases...),
			Tenders:   append([]domain.Tender(nil), ds.Tenders...),
		},
		vendorIdx: make(map[string]int, len(ds.Vendors)),
		itemIdx:   make(map[string]int, len(ds.Items)),
	}
	for i, v := range s.data.Vendors {
		s.vendorIdx[v.ID] = i
	}
	for i, it := range s.data.Items {
		s.itemIdx[it.ID] = i
	}
	return s
}

func (s *MemoryDataSource) Vendors() []domain.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Vendor{}, s.data.Vendors...)
}

func (s *MemoryDataSource) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Item{}, s.data.Items...)
}

func (s *MemoryDataSource) Offers() []domain.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Offer{}, s.data.Offers...)
}

func (s *MemoryDataSource) Purchases() []domain.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Purchase{}, s.data.Purchases...)
}

func (s *MemoryDataSource) Tenders() []domain.Tender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Tender{}, s.data.Tenders...)
}

func (s *MemoryDataSource) Vendor(id string) (domain.Vendor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.vendorIdx[id]
	if !ok {
		return domain.Vendor{}, false
	}
	return s.data.Vendors[i], true
}

func (s *MemoryDataSource) Item(id string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.itemIdx[id]
	if !ok {
		return domain.Item{}, false
	}
	return s.data.Items[i], true
}

func (s *MemoryDataSource) ItemsByVendor(vendorID string) []domain.OfferLine {
	return s.offerLines(func(o domain.Offer) bool { return o.VendorID == vendorID })
}

func (s *MemoryDataSource) VendorsByItem(itemID string) []domain.OfferLine {
	return s.offerLines(func(o domain.Offer) bool { return o.ItemID == itemID })
}

func (s *MemoryDataSource) offerLines(keep func(domain.Offer) bool) []domain.OfferLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := []domain.OfferLine{}
	for _, o := range s.data.Offers {
		if !keep(o) {
			continue
		}
		line := domain.OfferLine{Offer: o}
		// Dangling references are rejected at load; skip defensively anyway
		vi, vok := s.vendorIdx[o.VendorID]
		ii, iok := s.itemIdx[o.ItemID]
		if !vok || !iok {
			continue
		}
		line.Vendor = s.data.Vendors[vi]
		line.Item = s.data.Items[ii]
		lines = append(lines, line)
	}
	return lines
}

func (s *MemoryDataSource) PurchaseLines() []domain.PurchaseLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]domain.PurchaseLine, 0, len(s.data.Purchases))
	for _, p := range s.data.Purchases {
		line := domain.PurchaseLine{Purchase: p}
		if i, ok := s.vendorIdx[p.VendorID]; ok {
			line.VendorName = s.data.Vendors[i].Name
		}
		if i, ok := s.itemIdx[p.ItemID]; ok {
			line.ItemName = s.data.Items[i].Name
			line.ItemCategory = s.data.Items[i].Category
		}
		lines = append(lines, line)
	}
	return lines
}
