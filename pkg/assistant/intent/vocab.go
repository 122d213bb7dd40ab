package intent

// vocabEntry maps a canonical entity key to the bilingual surface forms
// that select it. Entries are ordered; the first synonym hit wins.
type vocabEntry struct {
	Key      string
	Synonyms []string
}

// Price and market vocabulary. Urdu has no letter case, so only Latin
// keywords rely on the lowercase pass.
var priceKeywords = []string{
	"price", "قیمت", "قیمتوں",
	"market", "مارکیٹ", "بازار",
	"rate", "ریٹ", "فیس",
	"cost", "لاگت",
	"expensive", "مہنگا", "cheap", "سستا",
	"wheat price", "گندم کی قیمت",
	"rice price", "چاول کی قیمت",
	"cotton price", "کپاس کی قیمت",
	"sugar price", "چینی کی قیمت",
}

var cropTable = []vocabEntry{
	{Key: "wheat", Synonyms: []string{"wheat", "گندم"}},
	{Key: "rice", Synonyms: []string{"rice", "چاول"}},
	{Key: "cotton", Synonyms: []string{"cotton", "کپاس"}},
	{Key: "sugar", Synonyms: []string{"sugar", "چینی", "sweet"}},
	{Key: "corn", Synonyms: []string{"corn", "مکئی", "maize"}},
}

var pestKeywords = []string{
	"pest", "کیڑا", "کیڑے", "کیڑوں",
	"insect", "حشرات",
	"disease", "بیماری",
	"aphid", "اپھیڈ",
	"borer", "بورر",
	"whitefly", "سفید مکھی",
	"thrips", "تھرپس",
	"jassid", "جیڈ",
	"caterpillar", "کیٹر پلر",
	"infestation", "انفیکشن",
	"control", "کنٹرول",
	"prevention", "بچاؤ", "روک تھام",
	"treatment", "علاج",
	"symptoms", "علامات", "نشانات",
}

var pestTable = []vocabEntry{
	{Key: "aphid", Synonyms: []string{"aphid", "اپھیڈ"}},
	{Key: "whitefly", Synonyms: []string{"whitefly", "سفید مکھی", "white fly"}},
	{Key: "borer", Synonyms: []string{"borer", "بورر", "stem borer", "ڈھڈا بورر"}},
	{Key: "thrips", Synonyms: []string{"thrips", "تھرپس"}},
	{Key: "jassid", Synonyms: []string{"jassid", "جیڈ"}},
	{Key: "armyworm", Synonyms: []string{"armyworm", "فال آرمی ورم"}},
	{Key: "leafhopper", Synonyms: []string{"leafhopper", "لیف ہوپر"}},
}

// pestCropTable drives the second extraction pass for pest questions that
// name a crop instead of a pest.
var pestCropTable = []vocabEntry{
	{Key: "wheat", Synonyms: []string{"wheat", "گندم"}},
	{Key: "rice", Synonyms: []string{"rice", "چاول"}},
	{Key: "cotton", Synonyms: []string{"cotton", "کپاس"}},
	{Key: "corn", Synonyms: []string{"corn", "مکئی", "maize"}},
	{Key: "vegetable", Synonyms: []string{"vegetable", "سبزی"}},
}

var weatherKeywords = []string{
	"weather", "موسم", "آب و ہوا",
	"temperature", "درجہ حرارت", "ٹمپریچر", "گرمی", "سردی",
	"rain", "بارش", "طوفان", "storm",
	"humidity", "نمی",
	"wind", "ہوا", "wind speed",
	"forecast", "پیشن گوئی", "پیش گوئی",
	"hot", "گرم", "cold", "سرد",
	"sunny", "دھوپ", "cloudy", "ابر آلود",
}

var cityTable = []vocabEntry{
	{Key: "Multan", Synonyms: []string{"multan", "ملتان"}},
	{Key: "Lahore", Synonyms: []string{"lahore", "لاہور"}},
	{Key: "Karachi", Synonyms: []string{"karachi", "کراچی"}},
	{Key: "Islamabad", Synonyms: []string{"islamabad", "اسلام آباد"}},
	{Key: "Peshawar", Synonyms: []string{"peshawar", "پشاور"}},
	{Key: "Quetta", Synonyms: []string{"quetta", "کوئٹہ"}},
	{Key: "Faisalabad", Synonyms: []string{"faisalabad", "فیصل آباد"}},
	{Key: "Rawalpindi", Synonyms: []string{"rawalpindi", "راولپنڈی"}},
	{Key: "Gujranwala", Synonyms: []string{"gujranwala", "گوجرانوالہ"}},
	{Key: "Sialkot", Synonyms: []string{"sialkot", "سیالکوٹ"}},
	{Key: "Punjab", Synonyms: []string{"punjab", "پنجاب"}},
	{Key: "Sindh", Synonyms: []string{"sindh", "سندھ"}},
	{Key: "KPK", Synonyms: []string{"kpk", "خیبر پختونخوا"}},
	{Key: "Balochistan", Synonyms: []string{"balochistan", "بلوچستان"}},
}

// urduCropPriceNames localizes the canonical crop key when querying stored
// prices, which keep Urdu display names.
var urduCropPriceNames = map[string]string{
	"wheat":  "گندم",
	"rice":   "چاول",
	"cotton": "کپاس",
	"sugar":  "چینی",
}

// urduPestCropNames localizes the canonical crop key for crop_affected
// lookups in stored pest records.
var urduPestCropNames = map[string]string{
	"wheat":     "گندم",
	"rice":      "چاول",
	"cotton":    "کپاس",
	"corn":      "مکئی",
	"vegetable": "سبزی",
}

// UrduCropPriceName returns the stored-price display name for a crop key,
// or the key unchanged when no localization exists.
func UrduCropPriceName(crop string) string {
	if name, ok := urduCropPriceNames[crop]; ok {
		return name
	}
	return crop
}

// UrduPestCropName returns the crop_affected lookup term for a crop key.
func UrduPestCropName(crop string) string {
	if name, ok := urduPestCropNames[crop]; ok {
		return name
	}
	return crop
}
