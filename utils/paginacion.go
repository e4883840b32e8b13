package utils

// Paginacion reproduce la aritmética de paginado del panel: el total de
// páginas nunca baja de 1 y la página pedida se ajusta al rango válido.
type Paginacion struct {
	Total        int `json:"total"`
	Pagina       int `json:"pagina"`
	TotalPaginas int `json:"total_paginas"`
	PorPagina    int `json:"por_pagina"`
}

// Paginar ajusta la página al rango [1, totalPaginas] y devuelve los índices
// [inicio, fin) del corte sobre la lista filtrada.
func Paginar(total, pagina, porPagina int) (p Paginacion, inicio, fin int) {
	if porPagina < 1 {
		porPagina = 1
	}

	totalPaginas := (total + porPagina - 1) / porPagina
	if totalPaginas < 1 {
		totalPaginas = 1
	}

	if pagina < 1 {
		pagina = 1
	}
	if pagina > totalPaginas {
		pagina = totalPaginas
	}

	inicio = (pagina - 1) * porPagina
	fin = inicio + porPagina
	if inicio > total {
		inicio = total
	}
	if fin > total {
		fin = total
	}

	p = Paginacion{
		Total:        total,
		Pagina:       pagina,
		TotalPaginas: totalPaginas,
		PorPagina:    porPagina,
	}
	return p, inicio, fin
}
