// internal/domain/entity/user.go
package entity

import "traveldesk-admin/pkg/rawdoc"

// User is the canonical account view model
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Mobile    string     `json:"mobile"`
	Role      string     `json:"role"`   // user|admin|partner|affiliate
	Status    string     `json:"status"` // active|inactive
	CreatedAt string     `json:"createdAt"`
	Raw       rawdoc.Doc `json:"_data,omitempty"`
}
