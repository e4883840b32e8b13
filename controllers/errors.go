package controllers

import "errors"

var (
	ErrSinPermiso        = errors.New("no tienes permisos para esta acción")
	ErrNombreObligatorio = errors.New("El nombre es obligatorio.")
)
