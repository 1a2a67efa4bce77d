// models/servicio.go
package models

import "time"

// Servicio is a catalog entry for a bookable service. Seeded externally,
// read-only from this service's perspective.
type Servicio struct {
	ID          string `json:"id" bson:"id"`
	Nombre      string `json:"nombre" bson:"nombre"`
	Tipo        string `json:"tipo" bson:"tipo"`
	Descripcion string `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
}

// ServicioResumen is the reduced projection returned by the per-type listing.
type ServicioResumen struct {
	ID     string `json:"id" bson:"id"`
	Nombre string `json:"nombre" bson:"nombre"`
	Tipo   string `json:"tipo" bson:"tipo"`
}

// ServicioUtilizado links a user to a service they booked at a chosen schedule.
type ServicioUtilizado struct {
	ID             string    `json:"id" bson:"id"`
	IDUsuario      string    `json:"idUsuario" bson:"id_usuario"`
	IDServicio     string    `json:"idServicio" bson:"id_servicio"`
	HorarioElegido time.Time `json:"horarioElegido" bson:"horario_elegido"`
	Estado         string    `json:"estado" bson:"estado"`
	FechaRegistro  time.Time `json:"fechaRegistro" bson:"fecha_registro"`
}
