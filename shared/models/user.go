// shared/models/user.go
package models

import "time"

// User roles. The very first user ever created becomes admin; everyone after
// that is a regular user. No role changes are exposed.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an authenticated club member, keyed by the identity provider's
// opaque external ID.
type User struct {
	OpenID        string     `bson:"_id" json:"openid"`
	Role          string     `bson:"role" json:"role"`
	Name          string     `bson:"name" json:"name"`
	Avatar        string     `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Bio           string     `bson:"bio,omitempty" json:"bio,omitempty"`
	CreateTime    *time.Time `bson:"createTime,omitempty" json:"createTime,omitempty"`
	LastLoginTime *time.Time `bson:"lastLoginTime,omitempty" json:"lastLoginTime,omitempty"`
}
