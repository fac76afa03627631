package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/authz"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/profile"
)

type itemResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       string     `json:"price"`
	PriceLabel  string     `json:"priceLabel"`
	Location    string     `json:"location"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	Status      string     `json:"status"`
	Actions     []string   `json:"actions"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ownerResponse struct {
	Username  string  `json:"username"`
	FullName  *string `json:"fullName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type itemDetailResponse struct {
	itemResponse
	CategoryName *string       `json:"categoryName,omitempty"`
	Owner        ownerResponse `json:"owner"`
}

type orderResponse struct {
	ID           uuid.UUID `json:"id"`
	ItemID       uuid.UUID `json:"itemId"`
	ItemTitle    string    `json:"itemTitle,omitempty"`
	BuyerID      uuid.UUID `json:"buyerId"`
	SellerID     uuid.UUID `json:"sellerId"`
	Status       string    `json:"status"`
	BuyerName    string    `json:"buyerName"`
	BuyerAddress string    `json:"buyerAddress"`
	BuyerContact string    `json:"buyerContact"`
	BuyerMessage *string   `json:"buyerMessage,omitempty"`
	Actions      []string  `json:"actions"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ledgerResponse struct {
	Purchases []orderResponse `json:"purchases"`
	Sales     []orderResponse `json:"sales"`
}

type profileResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	FullName  *string    `json:"fullName,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Location  *string    `json:"location,omitempty"`
	Bio       *string    `json:"bio,omitempty"`
	AvatarURL *string    `json:"avatarUrl,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type publicProfileResponse struct {
	Profile profileResponse `json:"profile"`
	Items   []itemResponse  `json:"items"`
}

type categoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon,omitempty"`
	Glyph string    `json:"glyph,omitempty"`
}

type commentResponse struct {
	ID             uuid.UUID `json:"id"`
	ItemID         uuid.UUID `json:"itemId"`
	AuthorID       uuid.UUID `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// presenter converts domain values to response bodies for one viewer.
type presenter struct {
	currency string
	viewer   *domain.Identity
}

func (p presenter) item(it *domain.Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Title:       it.Title,
		Description: it.Description,
		Price:       it.Price.StringFixed(2),
		PriceLabel:  domain.PriceLabel(it.Price, p.currency),
		Location:    it.Location,
		CategoryID:  it.CategoryID,
		ImageURL:    it.ImageURL,
		Status:      it.Status.String(),
		Actions:     actionNames(authz.ItemActions(p.viewer, it)),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func (p presenter) items(items []domain.Item) []itemResponse {
	out := make([]itemResponse, len(items))
	for i := range items {
		out[i] = p.item(&items[i])
	}
	return out
}

func (p presenter) itemDetail(d *domain.ItemDetail) itemDetailResponse {
	return itemDetailResponse{
		itemResponse: p.item(&d.Item),
		CategoryName: d.CategoryName,
		Owner: ownerResponse{
			Username:  d.Owner.Username,
			FullName:  d.Owner.FullName,
			Phone:     d.Owner.Phone,
			AvatarURL: d.Owner.AvatarURL,
		},
	}
}

func (p presenter) order(o *domain.Order) orderResponse {
	return orderResponse{
		ID:           o.ID,
		ItemID:       o.ItemID,
		ItemTitle:    o.ItemTitle,
		BuyerID:      o.BuyerID,
		SellerID:     o.SellerID,
		Status:       o.Status.String(),
		BuyerName:    o.Buyer.Name,
		BuyerAddress: o.Buyer.Address,
		BuyerContact: o.Buyer.Contact,
		BuyerMessage: o.Buyer.Message,
		Actions:      actionNames(authz.OrderActions(p.viewer, o)),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func (p presenter) orders(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = p.order(&orders[i])
	}
	return out
}

func toProfileResponse(pr *domain.Profile) profileResponse {
	resp := profileResponse{
		ID:        pr.ID,
		Username:  pr.Username,
		FullName:  pr.FullName,
		Phone:     pr.Phone,
		Location:  pr.Location,
		Bio:       pr.Bio,
		AvatarURL: pr.AvatarURL,
	}
	if !pr.CreatedAt.IsZero() {
		resp.CreatedAt = &pr.CreatedAt
	}
	return resp
}

func (p presenter) publicProfile(pp *profile.PublicProfile) publicProfileResponse {
	return publicProfileResponse{
		Profile: toProfileResponse(&pp.Profile),
		Items:   p.items(pp.Items),
	}
}

func toCategoryResponses(cats []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(cats))
	for i, c := range cats {
		out[i] = categoryResponse{ID: c.ID, Name: c.Name}
		if icon, ok := c.Icon(); ok {
			out[i].Icon = icon.Key
			out[i].Glyph = icon.Glyph
		}
	}
	return out
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:             c.ID,
		ItemID:         c.ItemID,
		AuthorID:       c.AuthorID,
		AuthorUsername: c.AuthorUsername,
		Content:        c.Content,
		CreatedAt:      c.CreatedAt,
	}
}

func actionNames(actions []authz.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	return out
}
