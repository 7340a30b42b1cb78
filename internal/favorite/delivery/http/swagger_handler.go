package http

// AddFavorite godoc
// @Summary Favorite a product
// @Description Add a product to a customer's favorite list
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Param productId path int true "Product ID"
// @Success 201 {object} object{id=int,customer_id=int,product_id=int,created_at=string}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /customers/{id}/products/{productId}/favorites [post]
func (h *FavoriteHandler) AddFavoriteDoc() {}

// RemoveFavorite godoc
// @Summary Unfavorite a product
// @Description Remove a product from a customer's favorite list (idempotent)
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} object{}
// @Router /customers/{id}/products/{productId}/favorites [delete]
func (h *FavoriteHandler) RemoveFavoriteDoc() {}

// ListFavorites godoc
// @Summary List favorite products
// @Description Paginated listing of a customer's favorite links
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Param page query int false "Page (default 1)"
// @Param perPage query int false "Page size (default 10)"
// @Success 200 {object} object{data=array,page=int,perPage=int,lastPage=int,total=int}
// @Router /customers/{id}/favorites [get]
func (h *FavoriteHandler) ListFavoritesDoc() {}
