package consts

const (
	CHARGE       = 1.6022e-19 // Elementary charge (C)
	PERMITTIVITY = 8.8542e-12 // Vacuum permittivity (F/m)
	PICO         = -12        // Picometer exponent (pm -> m)
)
