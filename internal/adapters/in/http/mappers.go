package http

import (
	"eats/internal/adapters/in/http/api"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/event"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
)

func toAPIUser(v queries.UserView) *api.User {
	return &api.User{
		Id:       v.ID,
		Email:    v.Email,
		Role:     api.Role(v.Role),
		Verified: v.Verified,
	}
}

func toAPIRestaurant(v queries.RestaurantView) api.Restaurant {
	return api.Restaurant{
		Id:            v.ID,
		Name:          v.Name,
		Address:       v.Address,
		CoverImg:      v.CoverImg,
		OwnerId:       v.OwnerID,
		CategoryId:    v.CategoryID,
		CategoryName:  v.CategoryName,
		IsPromoted:    v.IsPromoted,
		PromotedUntil: v.PromotedUntil,
	}
}

func toAPIRestaurantsPage(page queries.RestaurantsPage) api.RestaurantsResponse {
	response := api.RestaurantsResponse{
		Result:       api.Result{Ok: true},
		Restaurants:  make([]api.Restaurant, len(page.Restaurants)),
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
	for i, r := range page.Restaurants {
		response.Restaurants[i] = toAPIRestaurant(r)
	}
	return response
}

func toAPIDishOptions(options []restaurant.DishOption) []api.DishOption {
	if len(options) == 0 {
		return nil
	}
	result := make([]api.DishOption, len(options))
	for i, o := range options {
		result[i] = api.DishOption{Name: o.Name, Extra: o.Extra}
		for _, c := range o.Choices {
			result[i].Choices = append(result[i].Choices, api.DishChoice{Name: c.Name, Extra: c.Extra})
		}
	}
	return result
}

func fromAPIDishOptions(options []api.DishOption) []restaurant.DishOption {
	result := make([]restaurant.DishOption, len(options))
	for i, o := range options {
		result[i] = restaurant.DishOption{Name: o.Name, Extra: o.Extra}
		for _, c := range o.Choices {
			result[i].Choices = append(result[i].Choices, restaurant.DishChoice{Name: c.Name, Extra: c.Extra})
		}
	}
	return result
}

func toAPIRestaurantDetails(v queries.RestaurantDetailsView) *api.Restaurant {
	r := toAPIRestaurant(v.RestaurantView)
	r.Menu = make([]api.Dish, len(v.Menu))
	for i, d := range v.Menu {
		r.Menu[i] = api.Dish{
			Id:          d.ID,
			Name:        d.Name,
			Price:       d.Price,
			Description: d.Description,
			Photo:       d.Photo,
			Options:     toAPIDishOptions(d.Options),
		}
	}
	return &r
}

func toAPICategory(v queries.CategoryView) api.Category {
	return api.Category{
		Id:              v.ID,
		Name:            v.Name,
		Slug:            v.Slug,
		CoverImg:        v.CoverImg,
		RestaurantCount: v.RestaurantCount,
	}
}

func toAPIItemOptions(options []order.ItemOption) []api.OrderItemOption {
	if len(options) == 0 {
		return nil
	}
	result := make([]api.OrderItemOption, len(options))
	for i, o := range options {
		result[i] = api.OrderItemOption{Name: o.Name, Choice: o.Choice}
	}
	return result
}

func fromAPIItemOptions(options []api.OrderItemOption) []order.ItemOption {
	result := make([]order.ItemOption, len(options))
	for i, o := range options {
		result[i] = order.ItemOption{Name: o.Name, Choice: o.Choice}
	}
	return result
}

func toAPIOrder(v queries.OrderView) api.Order {
	o := api.Order{
		Id:             v.ID,
		CustomerId:     v.CustomerID,
		DriverId:       v.DriverID,
		RestaurantId:   v.RestaurantID,
		RestaurantName: v.RestaurantName,
		OwnerId:        v.OwnerID,
		Total:          v.Total,
		Status:         api.OrderStatus(v.Status),
		CreatedAt:      v.CreatedAt,
		Items:          make([]api.OrderItem, len(v.Items)),
	}
	for i, item := range v.Items {
		o.Items[i] = api.OrderItem{
			Id:       item.ID,
			DishId:   item.DishID,
			DishName: item.DishName,
			Price:    item.Price,
			Options:  toAPIItemOptions(item.Options),
		}
	}
	return o
}

// toAPIEventOrder renders a published snapshot for a subscription stream.
func toAPIEventOrder(snapshot event.Order) api.Order {
	o := api.Order{
		Id:           snapshot.ID,
		CustomerId:   snapshot.CustomerID,
		DriverId:     snapshot.DriverID,
		RestaurantId: snapshot.RestaurantID,
		OwnerId:      snapshot.OwnerID,
		Total:        snapshot.Total,
		Status:       api.OrderStatus(snapshot.Status),
		CreatedAt:    snapshot.CreatedAt,
		Items:        make([]api.OrderItem, len(snapshot.Items)),
	}
	for i, item := range snapshot.Items {
		o.Items[i] = api.OrderItem{
			Id:       item.ID,
			DishId:   item.DishID,
			DishName: item.DishName,
			Price:    item.Price,
			Options:  toAPIItemOptions(item.Options),
		}
	}
	return o
}

func toAPIPayment(v queries.PaymentView) api.Payment {
	return api.Payment{
		Id:             v.ID,
		TransactionId:  v.TransactionID,
		RestaurantId:   v.RestaurantID,
		RestaurantName: v.RestaurantName,
		CreatedAt:      v.CreatedAt,
	}
}
