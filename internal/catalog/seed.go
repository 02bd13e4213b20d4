package catalog

// Default returns the seeded storefront catalog.
func Default() *Catalog {
	c, err := New([]Product{
		{ID: "p1", Title: "Sepatu Sneakers", Price: 275000, Image: "sepatu seneakers.png", Description: "Sepatu nyaman untuk daily use. Bahan breathable, sol anti slip."},
		{ID: "p2", Title: "Jaket Boys", Price: 210000, Image: "jaket w.webp", Description: "Ringan, tahan angin dan mudah dilipat. Cocok buat traveling."},
		{ID: "p3", Title: "Tas Ransel 20L", Price: 145000, Image: "tas ransel.webp", Description: "Kapasitas ideal, banyak sekat. Bahan water-resistant."},
		{ID: "p4", Title: "TWS MP3", Price: 320000, Image: "TWS-JETE.jpg", Description: "Suara jernih, baterai awet sampai 20 jam."},
		{ID: "p5", Title: "Iphone 17", Price: 25000000, Image: "iphone-17.jpg", Description: "Desain modern, nyaman dipakai sepanjang hari."},
	})
	if err != nil {
		// The seed list is fixed, a duplicate here is a programming error.
		panic(err)
	}
	return c
}
