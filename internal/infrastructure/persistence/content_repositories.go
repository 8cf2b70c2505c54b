package persistence

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence/models"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

func activeOnly(tx *gorm.DB, _ time.Time) *gorm.DB {
	return tx.Where("is_active = ?", true)
}

var (
	blogTable = contentTable{
		entity:        "blog post",
		keyColumn:     "slug",
		searchColumns: []string{"title_en", "title_bn", "excerpt_en", "slug"},
		flagColumns: map[content.Flag]string{
			content.FlagPublished: "published",
			content.FlagFeatured:  "featured",
		},
		sortable:     []string{"created_at", "updated_at", "published_at", "title_en", "slug"},
		defaultOrder: "created_at desc" + idTiebreak,
		publicOrder:  "published_at desc, created_at desc" + idTiebreak,
		visible: func(tx *gorm.DB, _ time.Time) *gorm.DB {
			return tx.Where("published = ?", true)
		},
	}

	faqTable = contentTable{
		entity:         "faq",
		searchColumns:  []string{"question_en", "question_bn", "answer_en"},
		categoryColumn: "category",
		flagColumns:    map[content.Flag]string{content.FlagIsActive: "is_active"},
		sortable:       []string{"sort_order", "created_at", "updated_at", "category"},
		defaultOrder:   "sort_order asc, created_at asc" + idTiebreak,
		publicOrder:    "sort_order asc, created_at asc" + idTiebreak,
		visible:        activeOnly,
	}

	noticeTable = contentTable{
		entity:         "notice",
		searchColumns:  []string{"title_en", "title_bn", "content_en"},
		categoryColumn: "category",
		flagColumns: map[content.Flag]string{
			content.FlagIsActive: "is_active",
			content.FlagIsPinned: "is_pinned",
		},
		sortable:     []string{"published_at", "expires_at", "created_at", "updated_at", "title_en"},
		defaultOrder: "is_pinned desc, published_at desc, created_at desc" + idTiebreak,
		publicOrder:  "is_pinned desc, published_at desc, created_at desc" + idTiebreak,
		visible: func(tx *gorm.DB, now time.Time) *gorm.DB {
			return tx.Where("is_active = ?", true).
				Where("expires_at IS NULL OR expires_at > ?", now).
				Where("published_at IS NULL OR published_at <= ?", now)
		},
	}

	gazetteTable = contentTable{
		entity:        "gazette",
		keyColumn:     "gazette_number",
		searchColumns: []string{"gazette_number", "title_en", "title_bn", "description_en"},
		flagColumns:   map[content.Flag]string{content.FlagIsActive: "is_active"},
		sortable:      []string{"published_date", "gazette_number", "created_at", "updated_at"},
		defaultOrder:  "published_date desc, created_at desc" + idTiebreak,
		publicOrder:   "published_date desc, created_at desc" + idTiebreak,
		visible:       activeOnly,
	}

	contactTable = contentTable{
		entity:         "contact",
		searchColumns:  []string{"label_en", "label_bn", "value_en"},
		categoryColumn: "type",
		flagColumns:    map[content.Flag]string{content.FlagIsActive: "is_active"},
		sortable:       []string{"sort_order", "type", "created_at", "updated_at"},
		defaultOrder:   "sort_order asc, created_at asc" + idTiebreak,
		publicOrder:    "sort_order asc, created_at asc" + idTiebreak,
		visible:        activeOnly,
	}

	personSearch   = []string{"name_en", "name_bn", "designation_en", "department_en"}
	personSortable = []string{"sort_order", "name_en", "created_at", "updated_at"}

	memberTable = contentTable{
		entity:        "commission member",
		searchColumns: personSearch,
		flagColumns:   map[content.Flag]string{content.FlagIsActive: "is_active"},
		sortable:      personSortable,
		defaultOrder:  "sort_order asc, created_at asc" + idTiebreak,
		publicOrder:   "sort_order asc, created_at asc" + idTiebreak,
		visible:       activeOnly,
	}

	officialTable = contentTable{
		entity:        "commission official",
		searchColumns: personSearch,
		flagColumns:   map[content.Flag]string{content.FlagIsActive: "is_active"},
		sortable:      personSortable,
		defaultOrder:  "sort_order asc, created_at asc" + idTiebreak,
		publicOrder:   "sort_order asc, created_at asc" + idTiebreak,
		visible:       activeOnly,
	}

	galleryTable = contentTable{
		entity:         "gallery item",
		searchColumns:  []string{"title_en", "title_bn", "description_en"},
		categoryColumn: "media_type",
		flagColumns: map[content.Flag]string{
			content.FlagIsActive: "is_active",
			content.FlagFeatured: "featured",
		},
		sortable:     []string{"sort_order", "event_date", "created_at", "updated_at"},
		defaultOrder: "sort_order asc, created_at desc" + idTiebreak,
		publicOrder:  "featured desc, sort_order asc, event_date desc" + idTiebreak,
		visible:      activeOnly,
	}
)

// NewGormBlogRepository creates the blog post repository.
func NewGormBlogRepository(db *gorm.DB, logger logger.Logger) (content.Repository[content.BlogPost], error) {
	return newGormContentRepository[content.BlogPost, *content.BlogPost, models.BlogPostModel, *models.BlogPostModel](db, logger, blogTable), nil
}

// NewGormFAQRepository creates the FAQ repository.
func NewGormFAQRepository(db *gorm.DB, logger logger.Logger) (content.Repository[content.FAQ], error) {
	return newGormContentRepository[content.FAQ, *content.FAQ, models.FAQModel, *models.FAQModel](db, logger, faqTable), nil
}

// NewGormNoticeRepository creates the notice repository.
func NewGormNoticeRepository(db *gorm.DB, logger logger.Logger) (content.Repository[content.Notice], error) {
	return newGormContentRepository[content.Notice, *content.Notice, models.NoticeModel, *models.NoticeModel](db, logger, noticeTable), nil
}

// NewGormGazetteRepository creates the gazette repository.
func NewGormGazetteRepository(db *gorm.DB, logger logger.Logger) (content.Repository[content.Gazette], error) {
	return newGormContentRepository[content.Gazette, *content.Gazette, models.GazetteModel, *models.GazetteModel](db, logger, gazetteTable), nil
}

// NewGormContactRepository creates the contact repository.
func NewGormContactRepository(db *gorm.DB, logger logger.Logger) (content.Repository[content.ContactInfo], error) {
	return newGormContentRepository[content.ContactInfo, *content.ContactInfo, models.ContactInfoModel, *models.ContactInfoModel](db, logger, contactTable), nil
}

// NewGormMemberRepository creates the commission member repository.
func NewGormMemberRepository(db *gorm.DB, logger logger.Logger) (content.Repository[content.Person], error) {
	return newGormContentRepository[content.Person, *content.Person, models.CommissionMemberModel, *models.CommissionMemberModel](db, logger, memberTable), nil
}

// NewGormOfficialRepository creates the commission official repository.
func NewGormOfficialRepository(db *gorm.DB, logger logger.Logger) (content.Repository[content.Person], error) {
	return newGormContentRepository[content.Person, *content.Person, models.CommissionOfficialModel, *models.CommissionOfficialModel](db, logger, officialTable), nil
}

// NewGormGalleryRepository creates the gallery repository.
func NewGormGalleryRepository(db *gorm.DB, logger logger.Logger) (content.Repository[content.GalleryItem], error) {
	return newGormContentRepository[content.GalleryItem, *content.GalleryItem, models.GalleryItemModel, *models.GalleryItemModel](db, logger, galleryTable), nil
}
