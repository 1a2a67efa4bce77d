package models

// EstadoPendiente is the default status stamped on newly registered
// trámites and service bookings.
const EstadoPendiente = "pendiente"

// CarreraSinDefinir is the placeholder career assigned to users on first sign-in.
const CarreraSinDefinir = "Sin definir"
