// models/usuario.go
package models

import "time"

// Usuario represents a portal user, created on first successful sign-in
// through the external identity provider. There is no update path; the
// record is only ever written once.
type Usuario struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Nombre    string    `json:"nombre" bson:"nombre"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	Carrera   string    `json:"carrera" bson:"carrera"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
