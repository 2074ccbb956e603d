package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Role         string    `gorm:"not null;default:buyer"   json:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Verified     bool      `gorm:"default:false"            json:"verified"`
	IsActive     bool      `gorm:"default:true"             json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Vendor struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null"     json:"user_id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `json:"description"`
	BannerURL   string    `json:"banner_url,omitempty"`
	Rating      float64   `gorm:"default:0"                json:"rating"`
	TotalSales  int       `gorm:"default:0"                json:"total_sales"`
	Followers   int       `gorm:"default:0"                json:"followers"`
	CreatedAt   time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null"          json:"name"`
}

type Product struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VendorID      uint      `gorm:"index;not null"           json:"vendor_id"`
	CategoryID    uint      `gorm:"index"                    json:"category_id"`
	Title         string    `gorm:"not null"                 json:"title"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"not null"                 json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Stock         int       `gorm:"default:0"                json:"stock"`
	Rating        float64   `gorm:"default:0"                json:"rating"`
	ReviewCount   int       `gorm:"default:0"                json:"review_count"`
	IsTrending    bool      `gorm:"default:false"            json:"is_trending"`
	IsActive      bool      `gorm:"default:true"             json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`

	Vendor   Vendor         `gorm:"foreignKey:VendorID"   json:"-"`
	Category Category       `gorm:"foreignKey:CategoryID" json:"-"`
	Images   []ProductImage `gorm:"foreignKey:ProductID"  json:"-"`
	Tags     []ProductTag   `gorm:"foreignKey:ProductID"  json:"-"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null"           json:"product_id"`
	ImageURL  string `gorm:"not null"                 json:"image_url"`
	SortOrder int    `gorm:"default:0"                json:"sort_order"`
}

type ProductTag struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null"           json:"product_id"`
	Tag       string `gorm:"not null"                 json:"tag"`
}

// CartItem keeps at most one row per (user, product) pair; the unique index
// backs the merge-on-insert in the repo layer.
type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                   json:"id"`
	UserID    uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"                 json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                   json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_wish_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wish_user_product;not null" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

type VendorFollower struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                    json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_follow_user_vendor;not null" json:"user_id"`
	VendorID  uint      `gorm:"uniqueIndex:idx_follow_user_vendor;not null" json:"vendor_id"`
	CreatedAt time.Time `json:"created_at"`
}

// VendorStory is readable through the feed only while IsActive and before
// ExpiresAt. Expired stories persist but drop out of every query.
type VendorStory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VendorID  uint      `gorm:"index;not null"           json:"vendor_id"`
	Content   string    `gorm:"not null"                 json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Views     int       `gorm:"default:0"                json:"views"`
	ExpiresAt time.Time `gorm:"index;not null"           json:"expires_at"`
	IsActive  bool      `gorm:"default:true"             json:"is_active"`
	CreatedAt time.Time `json:"created_at"`

	Vendor Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"unique;not null"          json:"token"`
	UserID    uint      `gorm:"index;not null"           json:"user_id"`
	ExpiresAt time.Time `gorm:"not null"                 json:"expires_at"`
	Revoked   bool      `gorm:"default:false"            json:"revoked"`
}
