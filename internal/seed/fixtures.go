package seed

import (
	"github.com/shopspring/decimal"

	"kronos/internal/service"
)

// Products returns the demo catalog used by the seed command and the
// admin seed endpoint.
func Products() []service.CreateProductInput {
	return []service.CreateProductInput{
		watch("Submariner Date", "Rolex", "126610LN", 10900, 12,
			"Automatic", "Oystersteel", "Oystersteel", "41.00", "300m",
			"Iconic diver with Cerachrom bezel and Chromalight display."),
		watch("Speedmaster Professional", "Omega", "310.30.42.50.01.001", 7300, 8,
			"Manual", "Stainless Steel", "Stainless Steel", "42.00", "50m",
			"The Moonwatch, with the hand-wound calibre 3861."),
		watch("Nautilus", "Patek Philippe", "5811/1G", 69800, 2,
			"Automatic", "White Gold", "White Gold", "41.00", "30m",
			"Porthole-inspired sports elegance with integrated bracelet."),
		watch("Royal Oak", "Audemars Piguet", "15510ST", 35600, 3,
			"Automatic", "Stainless Steel", "Stainless Steel", "41.00", "50m",
			"Gerald Genta's octagonal bezel and Tapisserie dial."),
		watch("Tank Must", "Cartier", "WSTA0041", 3050, 15,
			"Quartz", "Stainless Steel", "Leather", "33.70", "30m",
			"The rectangular classic, unchanged in spirit since 1917."),
		watch("Reverso Classic", "Jaeger-LeCoultre", "Q3858520", 7050, 6,
			"Manual", "Stainless Steel", "Leather", "45.60", "30m",
			"Swivelling Art Deco case born on the polo field."),
	}
}

func watch(name, brand, modelRef string, price float64, stock int,
	movement, caseMat, strapMat, diameter, water, description string) service.CreateProductInput {
	p := decimal.NewFromFloat(price)
	d, _ := decimal.NewFromString(diameter)
	return service.CreateProductInput{
		Name:           name,
		Brand:          brand,
		Model:          &modelRef,
		Description:    &description,
		Price:          &p,
		Stock:          &stock,
		MovementType:   &movement,
		CaseMaterial:   &caseMat,
		StrapMaterial:  &strapMat,
		CaseDiameter:   &d,
		WaterResistant: &water,
	}
}
