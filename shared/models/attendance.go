// shared/models/attendance.go
package models

import "time"

// Event types an attendance row can refer to.
const (
	EventTraining = "training"
	EventMatch    = "match"
	EventMeeting  = "meeting"
)

// Attendance statuses.
const (
	StatusPresent = "present"
	StatusLeave   = "leave"
	StatusAbsent  = "absent"
)

// Attendance is one player's attendance at one event instance.
type Attendance struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PlayerID  string    `bson:"playerId" json:"playerId"`
	EventType string    `bson:"eventType" json:"eventType"`
	EventDate time.Time `bson:"eventDate" json:"eventDate"`
	Status    string    `bson:"status" json:"status"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`

	CreateTime *time.Time `bson:"createTime,omitempty" json:"createTime,omitempty"`
}
