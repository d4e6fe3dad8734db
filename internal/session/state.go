package session

import (
	"errors"
	"strings"
	"time"
)

const GuestName = "Guest"

var ErrInvalidDraftItem = errors.New("draft item needs a product id and a positive quantity")

type DraftItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// State is what one browser session remembers between requests.
type State struct {
	UserName  string      `json:"user_name,omitempty"`
	B2BMode   bool        `json:"b2b_mode"`
	Draft     []DraftItem `json:"draft,omitempty"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (s *State) SignedIn() bool {
	return s.UserName != ""
}

// SignIn stores the trimmed name, or GuestName when it is blank.
func (s *State) SignIn(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = GuestName
	}
	s.UserName = name
}

func (s *State) SignOut() {
	s.UserName = ""
}

func (s *State) ToggleB2B() {
	s.B2BMode = !s.B2BMode
}

// AddDraftItem adds quantity to the seller's B2B draft, merging with an
// existing line for the same product.
func (s *State) AddDraftItem(productID int64, quantity int) error {
	if productID <= 0 || quantity <= 0 {
		return ErrInvalidDraftItem
	}
	for i := range s.Draft {
		if s.Draft[i].ProductID == productID {
			s.Draft[i].Quantity += quantity
			return nil
		}
	}
	s.Draft = append(s.Draft, DraftItem{ProductID: productID, Quantity: quantity})
	return nil
}

func (s *State) RemoveDraftItem(productID int64) {
	kept := s.Draft[:0]
	for _, it := range s.Draft {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.Draft = kept
}

func (s *State) ClearDraft() {
	s.Draft = nil
}

func (s *State) clone() *State {
	c := *s
	if s.Draft != nil {
		c.Draft = append([]DraftItem(nil), s.Draft...)
	}
	return &c
}
