package magnitude_test

import (
	"fmt"

	"github.com/xandratxan/neutron-source/magnitude"
)

// ExampleNew demonstrates the absolute and relative constructors and
// the printable form.
func ExampleNew() {
	d, _ := magnitude.New(100, "cm", 1)
	b, _ := magnitude.NewRelative(385, "pSv·cm²", 0.01)

	fmt.Println(d)
	fmt.Println(b)
	// Output:
	// 100 ± 1 cm (1.00%)
	// 385 ± 3.85 pSv·cm² (1.00%)
}

// ExampleMagnitude_Div walks an inverse-square attenuation: a rate
// divided by the square of a measured distance.
func ExampleMagnitude_Div() {
	rate, _ := magnitude.NewRelative(1e6, "1/s", 0.02)
	dist, _ := magnitude.New(100, "cm", 1)

	area := dist.Pow(2).WithUnit("cm²")
	flux, _ := rate.Div(area)
	flux = flux.WithUnit("1/cm²s")

	fmt.Printf("%.1f %s (%.2f%%)\n", flux.Value, flux.Unit, flux.RelativeUncertainty()*100)
	// Output:
	// 100.0 1/cm²s (2.83%)
}
