package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Precio acepta número, cadena numérica o cadena vacía en el JSON de los
// formularios; vacío o null se toma como 0, igual que hacía el panel.
type Precio float64

func (p *Precio) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || string(data) == "null" {
		*p = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("precio inválido: %q", s)
		}
		*p = Precio(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("precio inválido: %s", string(data))
	}
	*p = Precio(v)
	return nil
}

func (p Precio) Float64() float64 {
	return float64(p)
}
