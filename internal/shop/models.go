package shop

import "cardsync/internal/model"

type productsResponse struct {
	Products   []model.Product `json:"products"`
	Pagination pagination      `json:"pagination"`
}

type pagination struct {
	NextPageCursor string `json:"nextPageCursor"`
}

type variantUpdateRequest struct {
	Pricing model.Pricing `json:"pricing"`
}
