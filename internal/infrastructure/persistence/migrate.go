package persistence

import (
	"fmt"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Models lists every table the portal owns, in creation order.
func Models() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.AuditLogModel{},
		&models.SubmissionModel{},
		&models.AttachmentModel{},
		&models.BlogPostModel{},
		&models.FAQModel{},
		&models.NoticeModel{},
		&models.GazetteModel{},
		&models.ContactInfoModel{},
		&models.CommissionMemberModel{},
		&models.CommissionOfficialModel{},
		&models.GalleryItemModel{},
	}
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
