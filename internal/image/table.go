package image

// imageTable maps lowercased item names to stock photo URLs. imageKeys
// preserves definition order so substring scans are deterministic.
var imageTable = map[string]string{
	"pasta":             "https://images.unsplash.com/photo-1551183053-bf91a1d81141",
	"tomatoes":          "https://images.unsplash.com/photo-1582284540020-8acbe03f4924",
	"garlic":            "https://images.unsplash.com/photo-1615477550927-6ec8445abaa6",
	"olive oil":         "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5",
	"basil":             "https://images.unsplash.com/photo-1600717535275-0b18ede2f7fc",
	"parmesan cheese":   "https://images.unsplash.com/photo-1634487359989-3e90c9432133",
	"flour":             "https://images.unsplash.com/photo-1603566541830-a1f7a23189e4",
	"yeast":             "https://images.unsplash.com/photo-1603251578711-3290ca6b66b8",
	"mozzarella cheese": "https://images.unsplash.com/photo-1619860705586-25ee1e28a612",
	"ground beef":       "https://images.unsplash.com/photo-1602470520998-f4a52199a3d6",
	"buns":              "https://images.unsplash.com/photo-1600326145359-3a44909d1a39",
	"lettuce":           "https://images.unsplash.com/photo-1622206151226-18ca2c9ab4a1",
	"tomato":            "https://images.unsplash.com/photo-1606588260160-0c2992a7e7c7",
	"onion":             "https://images.unsplash.com/photo-1587049633312-d628ae50a8ae",
	"cheese":            "https://images.unsplash.com/photo-1452195100486-9cc805987862",
	"ketchup":           "https://images.unsplash.com/photo-1613735788249-b52ea9252ad6",
	"cucumber":          "https://images.unsplash.com/photo-1604977042946-1eecc30f269e",
	"bell pepper":       "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83",
	"avocado":           "https://images.unsplash.com/photo-1632660668043-67a9b860ac8a",
	"rice":              "https://images.unsplash.com/photo-1536304993881-ff6e9eefa2a6",
	"chicken":           "https://images.unsplash.com/photo-1587593810167-a84920ea0781",
	"curry powder":      "https://images.unsplash.com/photo-1506368249639-73a05d6f6488",
	"coconut milk":      "https://images.unsplash.com/photo-1559710150-32394a163085",
	"ginger":            "https://images.unsplash.com/photo-1615484477778-ca3b77940c25",
	"sugar":             "https://images.unsplash.com/photo-1536304929831-ee1ca9d44906",
	"salt":              "https://images.unsplash.com/photo-1519847094858-21121ac6ed38",
	"water":             "https://images.unsplash.com/photo-1603724805096-e599d0444bca",
	"spices":            "https://images.unsplash.com/photo-1532336414038-cf19250c5757",
	"jeans":             "https://images.unsplash.com/photo-1542272604-787c3835535d",
	"denim jacket":      "https://images.unsplash.com/photo-1551537482-f2075a1d41f2",
	"shirt":             "https://images.unsplash.com/photo-1596755094514-f87e34085b2c",
	"dress":             "https://images.unsplash.com/photo-1595777457583-95e059d581b8",
	"sweater":           "https://images.unsplash.com/photo-1576871337622-98d48d1cf531",
	"sneakers":          "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
	"boots":             "https://images.unsplash.com/photo-1520639888713-7851133b1ed0",
	"sandals":           "https://images.unsplash.com/photo-1603487742131-4160ec999306",
	"loafers":           "https://images.unsplash.com/photo-1582897085656-c636d006a246",
	"smartphone":        "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9",
	"tablet":            "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0",
	"charger":           "https://images.unsplash.com/photo-1583863788434-e58a36330cf0",
	"earbuds":           "https://images.unsplash.com/photo-1590658268037-6bf12165a8df",
	"office suite":      "https://images.unsplash.com/photo-1497032628192-86f99bcd76bc",
	"antivirus suite":   "https://images.unsplash.com/photo-1563986768609-322da13575f3",
	"photo editor":      "https://images.unsplash.com/photo-1542038784456-1ea8e935640e",
}

var imageKeys = []string{
	"pasta", "tomatoes", "garlic", "olive oil", "basil", "parmesan cheese",
	"flour", "yeast", "mozzarella cheese", "ground beef", "buns", "lettuce",
	"tomato", "onion", "cheese", "ketchup", "cucumber", "bell pepper",
	"avocado", "rice", "chicken", "curry powder", "coconut milk", "ginger",
	"sugar", "salt", "water", "spices",
	"jeans", "denim jacket", "shirt", "dress", "sweater",
	"sneakers", "boots", "sandals", "loafers",
	"smartphone", "tablet", "charger", "earbuds",
	"office suite", "antivirus suite", "photo editor",
}

// fallbackPools hold topic-appropriate stock photos used when no table
// entry matches an item name.
var fallbackPools = map[string][]string{
	"food": {
		"https://images.unsplash.com/photo-1623428187969-5da2dcea5ebf",
		"https://images.unsplash.com/photo-1627485937980-936d240e5569",
		"https://images.unsplash.com/photo-1617692855027-33b14f061079",
	},
	"clothes": {
		"https://images.unsplash.com/photo-1489987707025-afc232f7ea0f",
		"https://images.unsplash.com/photo-1441986300917-64674bd600d8",
		"https://images.unsplash.com/photo-1445205170230-053b83016050",
	},
	"shoes": {
		"https://images.unsplash.com/photo-1549298916-b41d501d3772",
		"https://images.unsplash.com/photo-1560769629-975ec94e6a86",
		"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a",
	},
	"mobiles": {
		"https://images.unsplash.com/photo-1523206489230-c012c64b2b48",
		"https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c",
		"https://images.unsplash.com/photo-1510557880182-3d4d3cba35a5",
	},
	"software": {
		"https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
		"https://images.unsplash.com/photo-1498050108023-c5249f4df085",
		"https://images.unsplash.com/photo-1555066931-4365d14bab8c",
	},
}

var globalFallbackPool = []string{
	"https://images.unsplash.com/photo-1472851294608-062f824d29cc",
	"https://images.unsplash.com/photo-1441986300917-64674bd600d8",
	"https://images.unsplash.com/photo-1523206489230-c012c64b2b48",
}
