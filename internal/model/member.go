package model

import "time"

// Member represents a registered club member as stored in the `members`
// table. The ID is assigned by the database and never changes; it is the
// value encoded in the member's barcode. Email and Phone are nullable
// columns and therefore pointers.
//
// Fields:
//  ID        – primary key identifier, printed on the member's barcode.
//  Name      – display name, required.
//  Email     – optional contact email.
//  Phone     – optional contact phone.
//  CreatedAt – registration timestamp (UTC), set once at insert.
type Member struct {
	ID        uint64    `json:"id"`         // members.id
	Name      string    `json:"name"`       // members.name
	Email     *string   `json:"email"`      // members.email (nullable)
	Phone     *string   `json:"phone"`      // members.phone (nullable)
	CreatedAt time.Time `json:"created_at"` // members.created_at
}
