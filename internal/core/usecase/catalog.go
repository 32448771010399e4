package usecase

import "github.com/kirillkom/biocheck-converter/internal/core/domain"

// focusAreaCount is the number of focus areas an assessment is split into.
const focusAreaCount = 4

// overflowSection is assigned to categories beyond a focus area's declared sections.
const overflowSection = "A"

// categoryFocusAreas classifies source categories into focus areas.
// Categories missing here are not converted.
var categoryFocusAreas = map[string]int{
	domain.FarmInformationCategoryID: 1,
	"breeding_animal_supply":         1,
	"feed_water_supply":              2,
	"visitor_management":             2,
	"equipment_vehicles":             2,
	"disease_management":             3,
	"manure_carcass":                 3,
	"vermin_control":                 3,
	"production_practices":           3,
	"cleaning_disinfection":          4,
	"maintenance":                    4,
}

type focusAreaMetadata struct {
	name        domain.LocalizedText
	description domain.LocalizedText
	category    domain.BiosecurityCategory
	sections    []string
}

var focusAreas = map[int]focusAreaMetadata{
	1: {
		name: domain.Translations(map[string]string{
			"en": "Purchase & Transport",
			"id": "Pembelian & Transportasi",
			"vi": "Mua & Vận Chuyển",
		}),
		description: domain.Translations(map[string]string{
			"en": "Prevent disease entry through animals and vehicles",
			"id": "Mencegah masuknya penyakit melalui hewan dan kendaraan",
			"vi": "Ngăn ngừa bệnh xâm nhập qua động vật và phương tiện",
		}),
		category: domain.ExternalBiosecurity,
		sections: []string{"A", "B"},
	},
	2: {
		name: domain.Translations(map[string]string{
			"en": "Facilities & People",
			"id": "Fasilitas & Orang",
			"vi": "Cơ Sở & Con Người",
		}),
		description: domain.Translations(map[string]string{
			"en": "Control access and maintain biosecure facilities",
			"id": "Kontrol akses dan pertahankan fasilitas biosekuriti",
			"vi": "Kiểm soát truy cập và duy trì cơ sở an toàn sinh học",
		}),
		category: domain.ExternalBiosecurity,
		sections: []string{"C", "D", "E"},
	},
	3: {
		name: domain.Translations(map[string]string{
			"en": "Production Management",
			"id": "Manajemen Produksi",
			"vi": "Quản Lý Sản Xuất",
		}),
		description: domain.Translations(map[string]string{
			"en": "Manage disease risk and production practices",
			"id": "Kelola risiko penyakit dan praktik produksi",
			"vi": "Quản lý rủi ro bệnh và thực hành sản xuất",
		}),
		category: domain.InternalBiosecurity,
		sections: []string{"F", "G", "H", "I"},
	},
	4: {
		name: domain.Translations(map[string]string{
			"en": "Cleaning & Disinfection",
			"id": "Pembersihan & Disinfeksi",
			"vi": "Vệ Sinh & Khử Trùng",
		}),
		description: domain.Translations(map[string]string{
			"en": "Maintain hygiene through proper cleaning and maintenance",
			"id": "Pertahankan kebersihan melalui pembersihan dan pemeliharaan yang tepat",
			"vi": "Duy trì vệ sinh thông qua làm sạch và bảo trì đúng cách",
		}),
		category: domain.InternalBiosecurity,
		sections: []string{"J", "K"},
	},
}

// sectionLetter returns the letter of the index-th category of a focus area.
func (m focusAreaMetadata) sectionLetter(index int) string {
	if index < len(m.sections) {
		return m.sections[index]
	}
	return overflowSection
}

// FocusAreaOf reports the focus area a source category is classified into.
func FocusAreaOf(categoryID string) (int, bool) {
	n, ok := categoryFocusAreas[categoryID]
	return n, ok
}
