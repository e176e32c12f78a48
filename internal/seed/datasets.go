package seed

// Item is one entry of a static category dataset. Prices are kept as
// strings in the data and coerced on load.
type Item struct {
	Name  string
	Price string
	Img   string
}

// Dataset couples a category label with its items. Every loaded record
// gets the label as its category, whatever the source data says.
type Dataset struct {
	Category string
	Items    []Item
}

// Datasets returns the four fixed category datasets the catalog is
// seeded from on first boot.
func Datasets() []Dataset {
	return []Dataset{
		{Category: "foods", Items: foods},
		{Category: "sweets", Items: sweets},
		{Category: "drinks", Items: drinks},
		{Category: "snack", Items: snack},
	}
}

var foods = []Item{
	{Name: "Osh", Price: "35000", Img: "/images/foods/osh.png"},
	{Name: "Lag'mon", Price: "32000", Img: "/images/foods/lagmon.png"},
	{Name: "Shashlik", Price: "18000", Img: "/images/foods/shashlik.png"},
	{Name: "Manti", Price: "25000", Img: "/images/foods/manti.png"},
	{Name: "Somsa", Price: "8000", Img: "/images/foods/somsa.png"},
	{Name: "Mastava", Price: "28000", Img: "/images/foods/mastava.png"},
	{Name: "Sho'rva", Price: "26000", Img: "/images/foods/shorva.png"},
	{Name: "Dimlama", Price: "30000", Img: "/images/foods/dimlama.png"},
}

var sweets = []Item{
	{Name: "Medovik", Price: "22000", Img: "/images/sweets/medovik.png"},
	{Name: "Napoleon", Price: "20000", Img: "/images/sweets/napoleon.png"},
	{Name: "Chak-chak", Price: "15000", Img: "/images/sweets/chakchak.png"},
	{Name: "Halva", Price: "12000", Img: "/images/sweets/halva.png"},
	{Name: "Tiramisu", Price: "25000", Img: "/images/sweets/tiramisu.png"},
	{Name: "Muzqaymoq", Price: "10000", Img: "/images/sweets/muzqaymoq.png"},
}

var drinks = []Item{
	{Name: "Choy", Price: "3000", Img: "/images/drinks/choy.png"},
	{Name: "Qora choy", Price: "3000", Img: "/images/drinks/qora-choy.png"},
	{Name: "Kofe", Price: "12000", Img: "/images/drinks/kofe.png"},
	{Name: "Cola", Price: "9000", Img: "/images/drinks/cola.png"},
	{Name: "Ayron", Price: "7000", Img: "/images/drinks/ayron.png"},
	{Name: "Kompot", Price: "6000", Img: "/images/drinks/kompot.png"},
	{Name: "Mors", Price: "8000", Img: "/images/drinks/mors.png"},
}

var snack = []Item{
	{Name: "Lavash", Price: "24000", Img: "/images/snack/lavash.png"},
	{Name: "Hotdog", Price: "14000", Img: "/images/snack/hotdog.png"},
	{Name: "Burger", Price: "27000", Img: "/images/snack/burger.png"},
	{Name: "Fri", Price: "13000", Img: "/images/snack/fri.png"},
	{Name: "Donar", Price: "26000", Img: "/images/snack/donar.png"},
}
