// shared/models/schedule.go
package models

import "time"

// Schedule is an upcoming or past club event, independent of Match.
type Schedule struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Type        string    `bson:"type" json:"type"`
	Date        time.Time `bson:"date" json:"date"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Reminder    bool      `bson:"reminder" json:"reminder"`

	CreateTime *time.Time `bson:"createTime,omitempty" json:"createTime,omitempty"`
	UpdateTime *time.Time `bson:"updateTime,omitempty" json:"updateTime,omitempty"`
}
