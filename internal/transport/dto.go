package transport

import (
	"time"

	"github.com/LeducSama/congo-marketplace-backend/internal/models"
	"github.com/LeducSama/congo-marketplace-backend/internal/service"
)

type VendorSummary struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating,omitempty"`
}

type VendorDetail struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	TotalSales  int     `json:"totalSales"`
	Followers   int     `json:"followers"`
}

type ProductResponse struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	OriginalPrice *float64       `json:"originalPrice"`
	Images        []string       `json:"images"`
	Category      string         `json:"category"`
	VendorID      uint           `json:"vendorId"`
	Vendor        *VendorSummary `json:"vendor"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	Stock         int            `json:"stock"`
	Tags          []string       `json:"tags"`
	IsTrending    bool           `json:"isTrending"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.ImageURL)
	}
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, t.Tag)
	}

	category := "Uncategorized"
	if p.Category.Name != "" {
		category = p.Category.Name
	}

	var vendor *VendorSummary
	if p.Vendor.ID != 0 {
		vendor = &VendorSummary{ID: p.Vendor.ID, Name: p.Vendor.Name, Rating: p.Vendor.Rating}
	}

	return ProductResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        images,
		Category:      category,
		VendorID:      p.VendorID,
		Vendor:        vendor,
		Rating:        p.Rating,
		Reviews:       p.ReviewCount,
		Stock:         p.Stock,
		Tags:          tags,
		IsTrending:    p.IsTrending,
		CreatedAt:     p.CreatedAt,
	}
}

func NewProductList(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = NewProductResponse(&products[i])
	}
	return out
}

type CartProduct struct {
	ID     uint     `json:"id"`
	Title  string   `json:"title"`
	Price  float64  `json:"price"`
	Stock  int      `json:"stock"`
	Images []string `json:"images"`
}

type CartItemResponse struct {
	ID       uint        `json:"id"`
	Quantity uint        `json:"quantity"`
	Product  CartProduct `json:"product"`
}

func NewCartItemResponse(it *models.CartItem) CartItemResponse {
	images := make([]string, 0, len(it.Product.Images))
	for _, img := range it.Product.Images {
		images = append(images, img.ImageURL)
	}
	return CartItemResponse{
		ID:       it.ID,
		Quantity: it.Quantity,
		Product: CartProduct{
			ID:     it.Product.ID,
			Title:  it.Product.Title,
			Price:  it.Product.Price,
			Stock:  it.Product.Stock,
			Images: images,
		},
	}
}

func NewCartList(items []models.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, len(items))
	for i := range items {
		out[i] = NewCartItemResponse(&items[i])
	}
	return out
}

type WishlistItemResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Images        []string  `json:"images"`
	Vendor        struct {
		Name string `json:"name"`
	} `json:"vendor"`
	AddedAt time.Time `json:"addedAt"`
}

func NewWishlistList(items []models.WishlistItem) []WishlistItemResponse {
	out := make([]WishlistItemResponse, len(items))
	for i, it := range items {
		images := make([]string, 0, len(it.Product.Images))
		for _, img := range it.Product.Images {
			images = append(images, img.ImageURL)
		}
		resp := WishlistItemResponse{
			ID:            it.Product.ID,
			Title:         it.Product.Title,
			Price:         it.Product.Price,
			OriginalPrice: it.Product.OriginalPrice,
			Rating:        it.Product.Rating,
			Reviews:       it.Product.ReviewCount,
			Images:        images,
			AddedAt:       it.CreatedAt,
		}
		resp.Vendor.Name = it.Product.Vendor.Name
		out[i] = resp
	}
	return out
}

type VendorResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Banner      string    `json:"banner"`
	Rating      float64   `json:"rating"`
	TotalSales  int       `json:"totalSales"`
	Followers   int       `json:"followers"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewVendorList(vendors []models.Vendor) []VendorResponse {
	out := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		out[i] = VendorResponse{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			Avatar:      v.User.AvatarURL,
			Banner:      v.BannerURL,
			Rating:      v.Rating,
			TotalSales:  v.TotalSales,
			Followers:   v.Followers,
			Verified:    v.User.Verified,
			CreatedAt:   v.CreatedAt,
		}
	}
	return out
}

type StoryResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	Timestamp time.Time `json:"timestamp"`
	Views     int       `json:"views"`
}

type StoryVendor struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
}

type FeedStoryResponse struct {
	StoryResponse
	Vendor StoryVendor `json:"vendor"`
}

func NewStoryResponse(st *models.VendorStory) StoryResponse {
	return StoryResponse{
		ID:        st.ID,
		Content:   st.Content,
		ImageURL:  st.ImageURL,
		Timestamp: st.CreatedAt,
		Views:     st.Views,
	}
}

func NewFeedStoryList(stories []models.VendorStory) []FeedStoryResponse {
	out := make([]FeedStoryResponse, len(stories))
	for i := range stories {
		st := &stories[i]
		out[i] = FeedStoryResponse{
			StoryResponse: NewStoryResponse(st),
			Vendor: StoryVendor{
				ID:       st.Vendor.ID,
				Name:     st.Vendor.Name,
				Avatar:   st.Vendor.User.AvatarURL,
				Verified: st.Vendor.User.Verified,
			},
		}
	}
	return out
}

type FollowedVendorResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Avatar      string          `json:"avatar"`
	Verified    bool            `json:"verified"`
	HasNewStory bool            `json:"hasNewStory"`
	Stories     []StoryResponse `json:"stories"`
}

func NewFollowedVendorList(followed []service.FollowedVendor) []FollowedVendorResponse {
	out := make([]FollowedVendorResponse, len(followed))
	for i, fv := range followed {
		stories := make([]StoryResponse, len(fv.Stories))
		for j := range fv.Stories {
			stories[j] = NewStoryResponse(&fv.Stories[j])
		}
		out[i] = FollowedVendorResponse{
			ID:          fv.Vendor.ID,
			Name:        fv.Vendor.Name,
			Avatar:      fv.Vendor.User.AvatarURL,
			Verified:    fv.Vendor.User.Verified,
			HasNewStory: fv.HasNewStory,
			Stories:     stories,
		}
	}
	return out
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	TokenPair
}
