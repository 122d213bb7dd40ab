package main

import (
	"log"
	"os"

	"kisaan-academy-be/internal/model"
	"kisaan-academy-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Error: Failed to migrate database:", err)
	}

	seedCourses(db)
	seedMarketPrices(db)
	seedWikiArticles(db)
	seedWeatherAlerts(db)
	seedPestAlerts(db)

	log.Println("Seeding completed!")
}

func seedCourses(db *gorm.DB) {
	log.Println("Seeding Courses...")

	courses := []model.Course{
		{
			TitleUr:       "ڈرپ اریگیشن کا استعمال",
			TitleEn:       "Drip Irrigation Usage",
			DescriptionUr: "ڈرپ اریگیشن کے فوائد اور استعمال کا طریقہ",
			DescriptionEn: "Benefits and usage of drip irrigation",
			Category:      "sustainable_practices",
			VideoUrl:      "https://youtu.be/Xej22GsLLQA?si=PHj6dl6ADtEGCCw1",
			ContentUr:     "ڈرپ اریگیشن پانی کے بہتر استعمال کا ایک موثر طریقہ ہے جو پانی کی بچت کرتا ہے اور فصلوں کی بہتر افزائش میں مدد کرتا ہے۔",
			ContentEn:     "Drip irrigation is an effective method for better water usage that saves water and helps in better crop growth.",
		},
		{
			TitleUr:       "کمپوسٹ بنانے کا طریقہ",
			TitleEn:       "How to Make Compost",
			DescriptionUr: "کھاد بنانے کا آسان طریقہ",
			DescriptionEn: "Easy method to make fertilizer",
			Category:      "waste_management",
			VideoUrl:      "https://youtu.be/_K25WjjCBuw?si=ofVETNZjDqghuH80",
			ContentUr:     "کمپوسٹ بنانے کے لیے پودوں کی باقیات، کچرے اور نامیاتی مواد کو مناسب طریقے سے استعمال کریں۔",
			ContentEn:     "Use crop residues, waste, and organic materials properly to make compost.",
		},
		{
			TitleUr:       "مٹی کی جانچ",
			TitleEn:       "Soil Testing",
			DescriptionUr: "مٹی کی صحت کیسے چیک کریں",
			DescriptionEn: "How to check soil health",
			Category:      "sustainable_practices",
			VideoUrl:      "https://youtu.be/L6EtmGMJflI?si=7V3Y5w8ItkBzdUGw",
			ContentUr:     "مٹی کی جانچ فصل کی بہتری کے لیے ضروری ہے تاکہ آپ صحیح کھاد اور علاج استعمال کر سکیں۔",
			ContentEn:     "Soil testing is essential for crop improvement so you can use the right fertilizers and treatments.",
		},
		{
			TitleUr:       "گندم کی کاشت",
			TitleEn:       "Wheat Cultivation",
			DescriptionUr: "گندم کی کاشت کا مکمل طریقہ کار",
			DescriptionEn: "Complete guide to wheat cultivation",
			Category:      "crop_production",
			VideoUrl:      "https://youtu.be/xVO9bjuhB58?si=Cc8nqvcAuIFj5m9M",
			ContentUr:     "گندم پاکستان کی اہم ترین فصل ہے۔ اس کی کاشت کے لیے زمین کی تیاری، بیج کی اچھی قسم کا انتخاب، اور وقت پر کاشت بہت ضروری ہے۔",
			ContentEn:     "Wheat is Pakistan's most important crop. Land preparation, selecting good seed varieties, and timely sowing are essential.",
		},
		{
			TitleUr:       "چاول کی کاشت",
			TitleEn:       "Rice Cultivation",
			DescriptionUr: "چاول کی کاشت کے بہترین طریقے",
			DescriptionEn: "Best methods for rice cultivation",
			Category:      "crop_production",
			VideoUrl:      "https://youtu.be/FW_bw9jdrlQ?si=zIlptf1nqHRvqAAW",
			ContentUr:     "چاول کی کاشت کے لیے پانی کا مناسب انتظام، زمین کی تیاری، اور بیج کا انتخاب بہت اہم ہے۔",
			ContentEn:     "Proper water management, land preparation, and seed selection are very important for rice cultivation.",
		},
		{
			TitleUr:       "کپاس کی کاشت",
			TitleEn:       "Cotton Cultivation",
			DescriptionUr: "کپاس کی کامیاب کاشت کے رہنما اصول",
			DescriptionEn: "Guiding principles for successful cotton cultivation",
			Category:      "crop_production",
			VideoUrl:      "https://youtu.be/eN-TqqBQOAk?si=klQi7MA3dkPoEBLx",
			ContentUr:     "کپاس کی کاشت کے لیے موسم، زمین کی قسم، اور کیڑوں کا انتظام بہت ضروری ہے۔",
			ContentEn:     "Weather, soil type, and pest management are essential for cotton cultivation.",
		},
		{
			TitleUr:       "کیمیائی کھاد کا استعمال",
			TitleEn:       "Chemical Fertilizer Usage",
			DescriptionUr: "کیمیائی کھادوں کا صحیح استعمال",
			DescriptionEn: "Proper use of chemical fertilizers",
			Category:      "fertilizer_management",
			VideoUrl:      "https://youtu.be/y9b2p69CxCk?si=FIItGgzeOtBpMhpW",
			ContentUr:     "کیمیائی کھادوں کا صحیح استعمال فصلوں کی پیداوار بڑھاتا ہے لیکن زیادہ استعمال نقصان دہ ہو سکتا ہے۔",
			ContentEn:     "Proper use of chemical fertilizers increases crop yield but excessive use can be harmful.",
		},
		{
			TitleUr:       "نامیاتی کھاد",
			TitleEn:       "Organic Fertilizer",
			DescriptionUr: "نامیاتی کھاد بنانے اور استعمال کرنے کا طریقہ",
			DescriptionEn: "How to make and use organic fertilizer",
			Category:      "fertilizer_management",
			VideoUrl:      "https://youtu.be/lofNYAtHYu4?si=Sv78H9e6jyo8VAy1",
			ContentUr:     "نامیاتی کھاد ماحول دوست ہے اور مٹی کی صحت کو بہتر بناتی ہے۔",
			ContentEn:     "Organic fertilizer is environmentally friendly and improves soil health.",
		},
		{
			TitleUr:       "کیڑے مار ادویات",
			TitleEn:       "Pesticide Usage",
			DescriptionUr: "کیڑے مار ادویات کا محفوظ استعمال",
			DescriptionEn: "Safe use of pesticides",
			Category:      "pest_management",
			VideoUrl:      "https://youtu.be/lJEeGMMcYCI?si=xPnsjDkChLn9GoF6",
			ContentUr:     "کیڑے مار ادویات کا محفوظ اور مناسب استعمال فصلوں کو کیڑوں سے بچاتا ہے۔",
			ContentEn:     "Safe and proper use of pesticides protects crops from pests.",
		},
		{
			TitleUr:       "پانی کی بچت",
			TitleEn:       "Water Conservation",
			DescriptionUr: "کھیتی باڑی میں پانی کیسے بچایا جائے",
			DescriptionEn: "How to save water in farming",
			Category:      "resource_management",
			VideoUrl:      "https://youtu.be/-evivoRwUZw?si=JBMXsQWJchfMP3Al",
			ContentUr:     "پانی کی بچت کے مختلف طریقے جیسے بارش کے پانی کا ذخیرہ، ڈرپ اریگیشن، اور مناسب اریگیشن وقت۔",
			ContentEn:     "Various water conservation methods like rainwater harvesting, drip irrigation, and proper irrigation timing.",
		},
		{
			TitleUr:       "فصل کی کٹائی",
			TitleEn:       "Harvesting",
			DescriptionUr: "فصل کی کٹائی کا صحیح وقت اور طریقہ",
			DescriptionEn: "Right time and method for harvesting",
			Category:      "crop_production",
			VideoUrl:      "https://youtu.be/kWd_QnyO3eI?si=3S0fNULnIuWI9ltL",
			ContentUr:     "فصل کی کٹائی کا صحیح وقت پیداوار کی کیفیت اور مقدار کو متاثر کرتا ہے۔",
			ContentEn:     "The right time for harvesting affects the quality and quantity of yield.",
		},
		{
			TitleUr:       "بیج کی اچھی اقسام",
			TitleEn:       "Quality Seed Varieties",
			DescriptionUr: "بہتر پیداوار کے لیے بیج کی اقسام کا انتخاب",
			DescriptionEn: "Selecting seed varieties for better yield",
			Category:      "crop_production",
			VideoUrl:      "https://youtu.be/Oir1J_CfU9Q?si=tcbiBFgsfyF79H5Y",
			ContentUr:     "بیج کی اچھی اقسام کا انتخاب کامیاب فصل کی بنیاد ہے۔",
			ContentEn:     "Selecting quality seed varieties is the foundation of a successful crop.",
		},
	}

	for _, c := range courses {
		var existing model.Course
		if err := db.Where("title_en = ?", c.TitleEn).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating course '%s': %v", c.TitleEn, err)
		} else {
			log.Printf("Created course: %s", c.TitleEn)
		}
	}
}

func seedMarketPrices(db *gorm.DB) {
	log.Println("Seeding Market Prices...")

	prices := []model.MarketPrice{
		{CropName: "گندم", Region: "Punjab", PricePerKg: 4500.0, MandiName: "Lahore Mandi"},
		{CropName: "چاول", Region: "Punjab", PricePerKg: 5500.0, MandiName: "Lahore Mandi"},
		{CropName: "کپاس", Region: "Sindh", PricePerKg: 8000.0, MandiName: "Karachi Mandi"},
		{CropName: "گندم", Region: "Sindh", PricePerKg: 4600.0, MandiName: "Hyderabad Mandi"},
		{CropName: "چاول", Region: "KPK", PricePerKg: 5400.0, MandiName: "Peshawar Mandi"},
	}

	for _, p := range prices {
		var existing model.MarketPrice
		if err := db.Where("crop_name = ? AND region = ?", p.CropName, p.Region).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating price '%s/%s': %v", p.CropName, p.Region, err)
		} else {
			log.Printf("Created price: %s (%s)", p.CropName, p.Region)
		}
	}
}

func seedWikiArticles(db *gorm.DB) {
	log.Println("Seeding Wiki Articles...")

	articles := []model.WikiArticle{
		{
			TitleUr:   "کھیتی باڑی کے فضلے کا انتظام",
			TitleEn:   "Agricultural Waste Management",
			ContentUr: "کھیتی باڑی کے فضلے کو کیسے استعمال کیا جائے۔ فصلوں کی باقیات، جانوروں کا گوبر، اور دیگر نامیاتی مواد کو کمپوسٹ اور بائیوچار میں تبدیل کیا جا سکتا ہے۔",
			ContentEn: "How to utilize agricultural waste. Crop residues, animal manure, and other organic materials can be converted into compost and biochar.",
			Category:  "waste_management",
			Tags:      "کمپوسٹ, بائیوچار, کھاد",
			WikiUrl:   "https://en.wikipedia.org/wiki/Agricultural_waste",
		},
		{
			TitleUr:   "پانی کی بچت",
			TitleEn:   "Water Conservation",
			ContentUr: "پانی کے موثر استعمال کے طریقے۔ بارش کے پانی کا ذخیرہ، ڈرپ اریگیشن، اور موسمی اریگیشن سے پانی کی بچت ہو سکتی ہے۔",
			ContentEn: "Methods for efficient water usage. Rainwater harvesting, drip irrigation, and seasonal irrigation can save water.",
			Category:  "resource_management",
			Tags:      "پانی, بچت, اریگیشن",
			WikiUrl:   "https://en.wikipedia.org/wiki/Water_conservation",
		},
		{
			TitleUr:   "مٹی کی صحت",
			TitleEn:   "Soil Health",
			ContentUr: "مٹی کی صحت کو برقرار رکھنے کے طریقے۔ نامیاتی کھاد، کروپ روٹیشن، اور مناسب زمین کی تیاری مٹی کی صحت کو بہتر بناتی ہے۔",
			ContentEn: "Methods to maintain soil health. Organic fertilizers, crop rotation, and proper land preparation improve soil health.",
			Category:  "sustainable_practices",
			Tags:      "مٹی, صحت, نامیاتی",
			WikiUrl:   "https://en.wikipedia.org/wiki/Soil_health",
		},
		{
			TitleUr:   "کھیتی باڑی میں ماحولیاتی تبدیلی",
			TitleEn:   "Climate Change in Agriculture",
			ContentUr: "ماحولیاتی تبدیلی کا کھیتی باڑی پر اثر اور اس سے نمٹنے کے طریقے۔",
			ContentEn: "Impact of climate change on agriculture and methods to deal with it.",
			Category:  "sustainable_practices",
			Tags:      "موسم, تبدیلی, ماحول",
			WikiUrl:   "https://en.wikipedia.org/wiki/Climate_change_and_agriculture",
		},
		{
			TitleUr:   "آرگینک کھیتی باڑی",
			TitleEn:   "Organic Farming",
			ContentUr: "آرگینک کھیتی باڑی کے اصول اور طریقے۔ کیمیائی کھادوں اور کیڑے مار ادویات کے بغیر قدرتی طریقوں سے کھیتی باڑی۔",
			ContentEn: "Principles and methods of organic farming. Farming using natural methods without chemical fertilizers and pesticides.",
			Category:  "sustainable_practices",
			Tags:      "نامیاتی, قدرتی, ماحول دوست",
			WikiUrl:   "https://en.wikipedia.org/wiki/Organic_farming",
		},
		{
			TitleUr:   "بائیو ڈائیورسٹی",
			TitleEn:   "Biodiversity",
			ContentUr: "کھیتی باڑی میں حیاتیاتی تنوع کی اہمیت۔ مختلف فصلوں اور جانوروں کی اقسام کا برقرار رکھنا۔",
			ContentEn: "Importance of biodiversity in agriculture. Maintaining different varieties of crops and animals.",
			Category:  "sustainable_practices",
			Tags:      "تنوع, حیاتیات, فصل",
			WikiUrl:   "https://en.wikipedia.org/wiki/Agricultural_biodiversity",
		},
		{
			TitleUr:   "ڈرپ اریگیشن",
			TitleEn:   "Drip Irrigation",
			ContentUr: "ڈرپ اریگیشن نظام کی تفصیلات۔ پانی کی بچت اور موثر اریگیشن کا بہترین طریقہ۔",
			ContentEn: "Details of drip irrigation system. The best method for water saving and efficient irrigation.",
			Category:  "resource_management",
			Tags:      "اریگیشن, پانی, بچت",
			WikiUrl:   "https://en.wikipedia.org/wiki/Drip_irrigation",
		},
		{
			TitleUr:   "کمپوسٹ",
			TitleEn:   "Compost",
			ContentUr: "کمپوسٹ بنانے کا طریقہ اور اس کے فوائد۔ نامیاتی کچرے کو مفید کھاد میں تبدیل کرنا۔",
			ContentEn: "Method of making compost and its benefits. Converting organic waste into useful fertilizer.",
			Category:  "waste_management",
			Tags:      "کمپوسٹ, کھاد, نامیاتی",
			WikiUrl:   "https://en.wikipedia.org/wiki/Compost",
		},
		{
			TitleUr:   "کروپ روٹیشن",
			TitleEn:   "Crop Rotation",
			ContentUr: "کروپ روٹیشن کی اہمیت اور طریقہ کار۔ مختلف فصلوں کی باری باری کاشت سے مٹی کی صحت بہتر ہوتی ہے۔",
			ContentEn: "Importance and methodology of crop rotation. Alternating different crops improves soil health.",
			Category:  "sustainable_practices",
			Tags:      "فصل, باری, صحت",
			WikiUrl:   "https://en.wikipedia.org/wiki/Crop_rotation",
		},
	}

	for _, a := range articles {
		var existing model.WikiArticle
		if err := db.Where("title_en = ?", a.TitleEn).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&a).Error; err != nil {
			log.Printf("Error creating article '%s': %v", a.TitleEn, err)
		} else {
			log.Printf("Created article: %s", a.TitleEn)
		}
	}
}

func seedWeatherAlerts(db *gorm.DB) {
	log.Println("Seeding Weather Alerts...")

	alerts := []model.WeatherAlert{
		{
			Region:    "Punjab",
			AlertType: "heatwave",
			Severity:  "high",
			MessageUr: "اگلے 3 دنوں میں گرمی کی لہر متوقع ہے",
			MessageEn: "Heatwave expected in next 3 days",
		},
		{
			Region:    "Sindh",
			AlertType: "heavy_rain",
			Severity:  "medium",
			MessageUr: "بارش کی پیش گوئی",
			MessageEn: "Rain forecast",
		},
	}

	for _, a := range alerts {
		var existing model.WeatherAlert
		if err := db.Where("region = ? AND alert_type = ?", a.Region, a.AlertType).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&a).Error; err != nil {
			log.Printf("Error creating alert '%s/%s': %v", a.Region, a.AlertType, err)
		} else {
			log.Printf("Created alert: %s (%s)", a.AlertType, a.Region)
		}
	}
}

func seedPestAlerts(db *gorm.DB) {
	log.Println("Seeding Pest Alerts...")

	pests := []model.PestAlert{
		{
			Region:       "Punjab",
			PestNameUr:   "اپھیڈ",
			PestNameEn:   "Aphid",
			CropAffected: "گندم",
			Severity:     "high",
			SymptomsUr:   "پتے مڑ جاتے ہیں اور ان پر چپچپا مادہ نظر آتا ہے۔",
			SymptomsEn:   "Leaves curl and show a sticky residue.",
			PreventionUr: "فصل کا باقاعدہ معائنہ کریں اور نیم کے تیل کا سپرے استعمال کریں۔",
			PreventionEn: "Inspect the crop regularly and use neem oil spray.",
			TreatmentUr:  "شدید حملے کی صورت میں تجویز کردہ کیڑے مار دوا کا سپرے کریں۔",
			TreatmentEn:  "Spray a recommended insecticide in case of severe infestation.",
		},
		{
			Region:       "Sindh",
			PestNameUr:   "سفید مکھی",
			PestNameEn:   "Whitefly",
			CropAffected: "کپاس",
			Severity:     "high",
			SymptomsUr:   "پتوں کی نچلی سطح پر سفید کیڑے اور پتوں کا پیلا پن۔",
			SymptomsEn:   "White insects on the underside of leaves and yellowing foliage.",
			PreventionUr: "پیلے چپکنے والے کارڈ لگائیں اور متاثرہ پتے تلف کریں۔",
			PreventionEn: "Install yellow sticky traps and destroy infested leaves.",
			TreatmentUr:  "نیم کے تیل یا صابن والے پانی کا سپرے ہفتہ وار کریں۔",
			TreatmentEn:  "Spray neem oil or soapy water weekly.",
		},
		{
			Region:       "Punjab",
			PestNameUr:   "تنے کی سنڈی",
			PestNameEn:   "Stem Borer",
			CropAffected: "چاول",
			Severity:     "medium",
			PreventionUr: "کھیت میں پانی کا مناسب انتظام رکھیں اور متاثرہ پودے نکال دیں۔",
			PreventionEn: "Maintain proper water management and remove affected plants.",
		},
		{
			Region:       "KPK",
			PestNameUr:   "لشکری سنڈی",
			PestNameEn:   "Armyworm",
			CropAffected: "مکئی",
			Severity:     "medium",
			PreventionUr: "کھیت کے کناروں کی صفائی رکھیں اور صبح سویرے سپرے کریں۔",
			PreventionEn: "Keep field borders clean and spray early in the morning.",
		},
		{
			Region:       "Punjab",
			PestNameUr:   "تھرپس",
			PestNameEn:   "Thrips",
			CropAffected: "سبزیاں",
			Severity:     "low",
			PreventionUr: "نیلے چپکنے والے کارڈ لگائیں اور فصل کو پانی کی کمی سے بچائیں۔",
			PreventionEn: "Install blue sticky traps and avoid water stress on the crop.",
		},
	}

	for _, p := range pests {
		var existing model.PestAlert
		if err := db.Where("pest_name_en = ? AND region = ?", p.PestNameEn, p.Region).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating pest alert '%s': %v", p.PestNameEn, err)
		} else {
			log.Printf("Created pest alert: %s (%s)", p.PestNameEn, p.Region)
		}
	}
}
