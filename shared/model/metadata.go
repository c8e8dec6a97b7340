package model

import "time"

// Metadata is the identity and audit trail shared by every persisted entity.
// The accessor methods satisfy the repository Entity contract so the store
// can assign ids and stamp timestamps without reflection.
type Metadata struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Metadata) GetID() int {
	return m.ID
}

func (m *Metadata) SetID(id int) {
	m.ID = id
}

func (m *Metadata) GetCreatedAt() time.Time {
	return m.CreatedAt
}

func (m *Metadata) SetCreatedAt(t time.Time) {
	m.CreatedAt = t
}

func (m *Metadata) SetUpdatedAt(t time.Time) {
	m.UpdatedAt = t
}
