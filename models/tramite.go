// models/tramite.go
package models

import "time"

// Tramite is a catalog entry for an administrative procedure. The catalog
// is seeded externally; this service only reads it.
type Tramite struct {
	ID          string   `json:"id" bson:"id"`
	Nombre      string   `json:"nombre" bson:"nombre"`
	Tipo        string   `json:"tipo" bson:"tipo"`
	Costo       float64  `json:"costo" bson:"costo"`
	Requisitos  []string `json:"requisitos" bson:"requisitos"`
	Descripcion string   `json:"descripcion" bson:"descripcion"`
}

// TramiteDetalle is the fixed projection returned by the detail endpoint.
type TramiteDetalle struct {
	ID          string   `json:"id"`
	Nombre      string   `json:"nombre"`
	Tipo        string   `json:"tipo"`
	Costo       float64  `json:"costo"`
	Requisitos  []string `json:"requisitos"`
	Descripcion string   `json:"descripcion"`
}

// TramiteRealizado links a user to a trámite they filed, together with the
// documents they attached and the filing status.
type TramiteRealizado struct {
	ID         string    `json:"id" bson:"id"`
	IDUsuario  string    `json:"idUsuario" bson:"id_usuario"`
	IDTramite  string    `json:"idTramite" bson:"id_tramite"`
	Documentos []string  `json:"documentos" bson:"documentos"`
	Adicional  string    `json:"adicional" bson:"adicional"`
	Estado     string    `json:"estado" bson:"estado"`
	Fechas     time.Time `json:"fechas" bson:"fechas"`
}
