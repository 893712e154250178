package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Admin is the authenticated super-admin principal. Presence of a non-empty
// username means a session is held.
type Admin struct {
	Username string `json:"username"`
}

// OwnerStatus is the server-authoritative lifecycle state of an owner signup.
type OwnerStatus string

const (
	StatusPending  OwnerStatus = "pending"
	StatusApproved OwnerStatus = "approved"
	StatusRejected OwnerStatus = "rejected"

	// StatusAll is a client-side filter value only, never sent by the backend.
	StatusAll OwnerStatus = "all"
)

// ParseOwnerStatus maps user input onto a known filter value, defaulting to
// pending for anything unrecognized.
func ParseOwnerStatus(s string) OwnerStatus {
	switch OwnerStatus(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusAll:
		return OwnerStatus(s)
	default:
		return StatusPending
	}
}

// Owner is a bookstore or author account awaiting or holding marketplace
// listing rights. Status transitions happen server-side; the gateway only
// requests them.
type Owner struct {
	ID             string      `json:"_id"`
	StoreName      string      `json:"storeName"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Status         OwnerStatus `json:"status"`
	Bio            string      `json:"bio,omitempty"`
	WhatsappNumber string      `json:"whatsappNumber,omitempty"`
	CreatedAt      *time.Time  `json:"createdAt,omitempty"`
	ApprovedAt     *time.Time  `json:"approvedAt,omitempty"`
}

// OwnerRef is the embedded owner shape carried on ebook records.
type OwnerRef struct {
	StoreName      string `json:"storeName,omitempty"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
}

// Ebook is read-only from the gateway's perspective. Depending on the backend
// revision the owning store arrives as either "owner" or "storeOwner".
type Ebook struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Author      string     `json:"author,omitempty"`
	Description string     `json:"description,omitempty"`
	Price       Price      `json:"price"`
	Owner       *OwnerRef  `json:"owner,omitempty"`
	StoreOwner  *OwnerRef  `json:"storeOwner,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// Store coalesces the two owner field shapes.
func (e Ebook) Store() OwnerRef {
	if e.Owner != nil {
		return *e.Owner
	}
	if e.StoreOwner != nil {
		return *e.StoreOwner
	}
	return OwnerRef{}
}

// Price tolerates every shape the backend has been seen sending: a bare
// number, a preformatted string, or an {amount, currency} object.
type Price struct {
	Amount   float64
	Currency string
	Raw      string
	set      bool
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = Price{Amount: num, set: true}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*p = Price{Raw: str, set: true}
		return nil
	}

	var obj struct {
		Amount        *float64 `json:"amount"`
		Value         *float64 `json:"value"`
		AmountInMinor *float64 `json:"amount_in_minor"`
		Currency      string   `json:"currency"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	amount := 0.0
	switch {
	case obj.Amount != nil:
		amount = *obj.Amount
	case obj.Value != nil:
		amount = *obj.Value
	case obj.AmountInMinor != nil:
		amount = *obj.AmountInMinor
	}
	*p = Price{Amount: amount, Currency: obj.Currency, set: true}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.Raw != "" {
		return json.Marshal(p.Raw)
	}
	return json.Marshal(p.Amount)
}

// Format renders the price for display. Naira is the platform default.
func (p Price) Format() string {
	if !p.set {
		return "₦4000"
	}
	if p.Raw != "" {
		return p.Raw
	}
	currency := p.Currency
	if currency == "" {
		currency = "₦"
	}
	amount := formatAmount(p.Amount)
	if len([]rune(currency)) <= 2 {
		return currency + amount
	}
	return currency + " " + amount
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// ThemeMode is the platform-wide light/dark preference. It is global and
// singular, not per-admin.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark
}

// ParseThemeMode validates user input, falling back to dark — the platform
// default the original console shipped with.
func ParseThemeMode(s string) ThemeMode {
	if m := ThemeMode(s); m.Valid() {
		return m
	}
	return ThemeDark
}
