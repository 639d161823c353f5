package seed

import (
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	"github.com/svsdigitals/printshop-backend/pkg/enums"
)

// CategoryNames lists the storefront taxonomy in display order.
var CategoryNames = []string{
	"Business Essentials",
	"Promotional Items",
	"Academic Solutions",
	"Special Events",
	"Marketing Materials",
}

func paise(v int64) *int64 {
	return &v
}

// Products returns the built-in catalog. Callers get fresh copies, so
// mutating a returned row never leaks into later reconciliation runs.
func Products() []models.Product {
	rows := make([]models.Product, len(catalog))
	copy(rows, catalog)
	for i := range rows {
		rows[i].Source = enums.ProductSourceSeed
		rows[i].IsActive = true
		rows[i].Customizable = true
	}
	return rows
}

var catalog = []models.Product{
	{
		ID:                 "1",
		Slug:               "business-cards",
		Name:               "Business Cards",
		Description:        "Professional business cards with premium finishes - Single side printing",
		PricePaise:         35000,
		OriginalPricePaise: paise(45000),
		Category:           "Business Essentials",
		Image:              "https://cms.cloudinary.vpsvc.com/image/upload/c_scale,dpr_auto,f_auto,q_auto:best,t_productPageHeroGalleryTransformation_v2,w_auto/India%20LOB/visiting-cards/Standard%20Visiting%20Cards/IN_Standard-Visiting-Cards_Hero-image_01",
		Features:           []string{"High-quality 300 GSM cardstock", "Full-color printing", "Matte/Glossy finish options", "Custom design included", "Free sample preview"},
		BestSeller:         true,
		DeliveryTime:       "24-48 hours",
		MinQuantity:        100,
		Unit:               "100 cards",
	},
	{
		ID:           "2",
		Slug:         "id-cards-pvc",
		Name:         "ID Cards (PVC)",
		Description:  "Durable PVC ID cards with photo printing and custom design",
		PricePaise:   7500,
		Category:     "Business Essentials",
		Image:        "https://images.unsplash.com/photo-1593510987046-1f8fcfc512a0?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Waterproof PVC material", "Photo quality printing", "Rounded corners", "Lanyard hole option", "Scratch resistant"},
		DeliveryTime: "2-3 days",
		MinQuantity:  1,
		Unit:         "per piece",
	},
	{
		ID:           "3",
		Slug:         "letterheads",
		Name:         "Letterheads",
		Description:  "Professional letterheads for business correspondence",
		PricePaise:   60000,
		Category:     "Business Essentials",
		Image:        "https://images.unsplash.com/photo-1586953208448-b95a79798f07?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Premium 80 GSM paper", "Professional design", "Company logo & details", "Watermark options", "Bulk pricing available"},
		DeliveryTime: "24-48 hours",
		MinQuantity:  100,
		Unit:         "100 sheets",
	},
	{
		ID:           "4",
		Slug:         "bill-books",
		Name:         "Bill Books",
		Description:  "Custom bill books with company details and numbering",
		Category:     "Business Essentials",
		Image:        "https://images.unsplash.com/photo-1554224155-6726b3ff858f?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Carbonless copies", "Custom numbering", "Company branding", "Professional binding", "GST compliant format"},
		CustomQuote:  true,
		DeliveryTime: "3-5 days",
		MinQuantity:  1,
		Unit:         "per book",
	},
	{
		ID:           "5",
		Slug:         "corporate-brochures",
		Name:         "Corporate Brochures",
		Description:  "High-quality brochures for marketing and business promotion",
		PricePaise:   150000,
		Category:     "Business Essentials",
		Image:        "https://5.imimg.com/data5/WZ/XC/YB/SELLER-10839501/brochure-printing-services.jpg",
		Features:     []string{"Premium 170 GSM paper", "Full-color printing", "Tri-fold/Bi-fold options", "Professional design", "Bulk discounts"},
		DeliveryTime: "2-3 days",
		MinQuantity:  100,
		Unit:         "100 pieces",
	},
	{
		ID:           "6",
		Slug:         "custom-t-shirts",
		Name:         "Custom T-Shirts",
		Description:  "Premium quality t-shirts with custom printing and designs",
		PricePaise:   49900,
		Category:     "Promotional Items",
		Image:        "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"100% cotton fabric", "Vibrant screen printing", "Multiple sizes available", "Custom designs", "Bulk order discounts"},
		BestSeller:   true,
		DeliveryTime: "3-5 days",
		MinQuantity:  10,
		Unit:         "per piece",
	},
	{
		ID:           "7",
		Slug:         "photo-mugs",
		Name:         "Photo Mugs",
		Description:  "Personalized ceramic mugs with photo printing",
		PricePaise:   29900,
		Category:     "Promotional Items",
		Image:        "https://images.unsplash.com/photo-1544787219-7f47ccb76574?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Ceramic material", "Photo quality printing", "Dishwasher safe", "Gift box packaging", "Custom text options"},
		DeliveryTime: "24-48 hours",
		MinQuantity:  1,
		Unit:         "per piece",
	},
	{
		ID:           "8",
		Slug:         "branded-pens",
		Name:         "Branded Pens",
		Description:  "Custom branded pens for corporate gifting and promotions",
		PricePaise:   1500,
		Category:     "Promotional Items",
		Image:        "https://images.unsplash.com/photo-1586953208448-b95a79798f07?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Smooth writing", "Company logo printing", "Multiple colors", "Bulk quantities", "Cost-effective branding"},
		DeliveryTime: "2-3 days",
		MinQuantity:  100,
		Unit:         "per piece",
	},
	{
		ID:           "9",
		Slug:         "lanyards-with-tags",
		Name:         "Lanyards with Tags",
		Description:  "Custom lanyards with ID card holders for events and offices",
		PricePaise:   4000,
		Category:     "Promotional Items",
		Image:        "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Durable polyester material", "Custom printing", "Metal/plastic clips", "ID card holder included", "Event branding"},
		DeliveryTime: "3-4 days",
		MinQuantity:  50,
		Unit:         "per piece",
	},
	{
		ID:           "10",
		Slug:         "custom-keychains",
		Name:         "Custom Keychains",
		Description:  "Personalized keychains in various materials and designs",
		PricePaise:   7500,
		Category:     "Promotional Items",
		Image:        "https://images.unsplash.com/photo-1588508065123-287b28e013da?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Multiple material options", "Custom shapes available", "Photo/logo printing", "Durable construction", "Gift packaging"},
		DeliveryTime: "2-3 days",
		MinQuantity:  25,
		Unit:         "per piece",
	},
	{
		ID:           "11",
		Slug:         "school-diaries",
		Name:         "School Diaries",
		Description:  "Custom school diaries with academic calendar and school branding",
		Category:     "Academic Solutions",
		Image:        "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Academic year calendar", "School logo & details", "Quality binding", "Student information pages", "Durable cover"},
		CustomQuote:  true,
		DeliveryTime: "5-7 days",
		MinQuantity:  100,
		Unit:         "per diary",
	},
	{
		ID:           "12",
		Slug:         "report-cards",
		Name:         "Report Cards",
		Description:  "Professional report cards with school branding and security features",
		PricePaise:   2500,
		Category:     "Academic Solutions",
		Image:        "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Security paper", "School logo printing", "Grade templates", "Professional design", "Bulk pricing"},
		DeliveryTime: "2-3 days",
		MinQuantity:  100,
		Unit:         "per piece",
	},
	{
		ID:           "13",
		Slug:         "certificates",
		Name:         "Certificates",
		Description:  "Award certificates for academic and professional recognition",
		PricePaise:   4000,
		Category:     "Academic Solutions",
		Image:        "https://www.eprinton.in/wp-content/uploads/2022/08/Certificate-Printing_coimbatore.jpg",
		Features:     []string{"Premium certificate paper", "Gold foil options", "Custom designs", "Professional templates", "Bulk discounts"},
		DeliveryTime: "24-48 hours",
		MinQuantity:  10,
		Unit:         "per piece",
	},
	{
		ID:           "14",
		Slug:         "academic-calendars",
		Name:         "Academic Calendars",
		Description:  "Custom academic calendars for schools and educational institutions",
		PricePaise:   15000,
		Category:     "Academic Solutions",
		Image:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Academic year layout", "Holiday markings", "School events", "Quality printing", "Wall/desk options"},
		DeliveryTime: "3-5 days",
		MinQuantity:  50,
		Unit:         "per calendar",
	},
	{
		ID:                 "15",
		Slug:               "wedding-cards",
		Name:               "Wedding Cards",
		Description:        "Elegant wedding invitation cards with traditional and modern designs",
		PricePaise:         4000,
		OriginalPricePaise: paise(6000),
		Category:           "Special Events",
		Image:              "https://images.unsplash.com/photo-1606800052052-a08af7148866?auto=format&fit=crop&w=500&q=60",
		Features:           []string{"Premium cardstock", "Traditional Indian designs", "Gold foil options", "Custom text in multiple languages", "Matching envelopes"},
		BestSeller:         true,
		DeliveryTime:       "3-5 days",
		MinQuantity:        100,
		Unit:               "per piece",
	},
	{
		ID:           "16",
		Slug:         "event-invitations",
		Name:         "Event Invitations",
		Description:  "Custom invitations for all special occasions and corporate events",
		Category:     "Special Events",
		Image:        "https://images.unsplash.com/photo-1464207687429-7505649dae38?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Custom designs", "Multiple formats", "Premium paper options", "RSVP cards", "Envelope printing"},
		CustomQuote:  true,
		DeliveryTime: "2-4 days",
		MinQuantity:  50,
		Unit:         "per piece",
	},
	{
		ID:           "17",
		Slug:         "photo-prints",
		Name:         "Photo Prints",
		Description:  "High-quality photo prints in various sizes with professional finishing",
		PricePaise:   1500,
		Category:     "Special Events",
		Image:        "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Professional photo paper", "Multiple sizes (4x6 to A3)", "Matte/Glossy finish", "Color correction", "Same day printing"},
		DeliveryTime: "2-4 hours",
		MinQuantity:  1,
		Unit:         "per print",
	},
	{
		ID:           "18",
		Slug:         "event-badges",
		Name:         "Event Badges",
		Description:  "Custom badges for conferences, events, and identification",
		PricePaise:   3000,
		Category:     "Special Events",
		Image:        "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Durable materials", "Custom designs", "Photo printing", "Pin/clip attachments", "Event branding"},
		DeliveryTime: "24-48 hours",
		MinQuantity:  25,
		Unit:         "per piece",
	},
	{
		ID:           "19",
		Slug:         "custom-stickers",
		Name:         "Custom Stickers",
		Description:  "Vinyl stickers for branding, promotions, and decorative purposes",
		PricePaise:   20000,
		Category:     "Marketing Materials",
		Image:        "https://images.unsplash.com/photo-1611224923853-80b023f02d71?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Waterproof vinyl", "Custom shapes & sizes", "Vibrant colors", "Bulk quantities", "Indoor/outdoor use"},
		DeliveryTime: "2-3 days",
		MinQuantity:  1,
		Unit:         "per sheet",
	},
	{
		ID:           "20",
		Slug:         "pamphlets",
		Name:         "Pamphlets",
		Description:  "Marketing pamphlets and flyers for business promotion",
		PricePaise:   200,
		Category:     "Marketing Materials",
		Image:        "https://images.unsplash.com/photo-1586953208448-b95a79798f07?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"A4/A5 sizes", "Full-color printing", "Quality paper", "Bulk pricing", "Fast turnaround"},
		DeliveryTime: "24-48 hours",
		MinQuantity:  500,
		Unit:         "per piece",
	},
	{
		ID:           "21",
		Slug:         "booklets",
		Name:         "Booklets",
		Description:  "Multi-page booklets for catalogs, manuals, and presentations",
		Category:     "Marketing Materials",
		Image:        "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Professional binding", "Multiple page counts", "Full-color printing", "Custom sizes", "Bulk discounts"},
		CustomQuote:  true,
		DeliveryTime: "3-5 days",
		MinQuantity:  25,
		Unit:         "per booklet",
	},
	{
		ID:           "22",
		Slug:         "product-photography",
		Name:         "Product Photography",
		Description:  "Professional product photography services for e-commerce and marketing",
		PricePaise:   100000,
		Category:     "Marketing Materials",
		Image:        "https://images.unsplash.com/photo-1606107557309-065aa4d4ac96?auto=format&fit=crop&w=500&q=60",
		Features:     []string{"Professional lighting setup", "High-resolution images", "Multiple angles", "Background options", "Quick delivery"},
		DeliveryTime: "24-48 hours",
		MinQuantity:  1,
		Unit:         "per hour",
	},
}
