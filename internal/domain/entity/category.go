package entity

import (
	"time"
)

type Category struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Timestamp time.Time `json:"timestamp,omitempty" firestore:"timestamp,omitempty"`
}
