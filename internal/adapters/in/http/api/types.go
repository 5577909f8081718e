package api

import "time"

type Role string

const (
	RoleClient   Role = "Client"
	RoleOwner    Role = "Owner"
	RoleDelivery Role = "Delivery"
)

type OrderStatus string

// Result is the envelope every response carries.
type Result struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Result
	Token string `json:"token,omitempty"`
}

type VerifyEmailRequest struct {
	Code string `json:"code"`
}

type EditProfileRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type User struct {
	Id       uint   `json:"id"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Verified bool   `json:"verified"`
}

type UserProfileResponse struct {
	Result
	User *User `json:"user,omitempty"`
}

type CreatedResponse struct {
	Result
	Id uint `json:"id,omitempty"`
}

type DishChoice struct {
	Name  string `json:"name"`
	Extra int    `json:"extra,omitempty"`
}

type DishOption struct {
	Name    string       `json:"name"`
	Extra   int          `json:"extra,omitempty"`
	Choices []DishChoice `json:"choices,omitempty"`
}

type Dish struct {
	Id          uint         `json:"id"`
	Name        string       `json:"name"`
	Price       int          `json:"price"`
	Description string       `json:"description,omitempty"`
	Photo       string       `json:"photo,omitempty"`
	Options     []DishOption `json:"options,omitempty"`
}

type Restaurant struct {
	Id            uint       `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	CoverImg      string     `json:"coverImg,omitempty"`
	OwnerId       uint       `json:"ownerId"`
	CategoryId    *uint      `json:"categoryId,omitempty"`
	CategoryName  string     `json:"categoryName,omitempty"`
	IsPromoted    bool       `json:"isPromoted"`
	PromotedUntil *time.Time `json:"promotedUntil,omitempty"`
	Menu          []Dish     `json:"menu,omitempty"`
}

type RestaurantsResponse struct {
	Result
	Restaurants  []Restaurant `json:"restaurants"`
	TotalPages   int          `json:"totalPages"`
	TotalResults int64        `json:"totalResults"`
}

type RestaurantResponse struct {
	Result
	Restaurant *Restaurant `json:"restaurant,omitempty"`
}

type CreateRestaurantRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	CoverImg     string `json:"coverImg"`
	CategoryName string `json:"categoryName"`
}

type EditRestaurantRequest struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	CoverImg     *string `json:"coverImg,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
}

type CreateDishRequest struct {
	Name        string       `json:"name"`
	Price       int          `json:"price"`
	Description string       `json:"description"`
	Photo       string       `json:"photo,omitempty"`
	Options     []DishOption `json:"options,omitempty"`
}

type EditDishRequest struct {
	Name        *string       `json:"name,omitempty"`
	Price       *int          `json:"price,omitempty"`
	Description *string       `json:"description,omitempty"`
	Photo       *string       `json:"photo,omitempty"`
	Options     *[]DishOption `json:"options,omitempty"`
}

type Category struct {
	Id              uint   `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	CoverImg        string `json:"coverImg,omitempty"`
	RestaurantCount int64  `json:"restaurantCount"`
}

type CategoriesResponse struct {
	Result
	Categories []Category `json:"categories"`
}

type CategoryResponse struct {
	RestaurantsResponse
	Category *Category `json:"category,omitempty"`
}

type OrderItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

type OrderItem struct {
	Id       uint              `json:"id"`
	DishId   uint              `json:"dishId"`
	DishName string            `json:"dishName"`
	Price    int               `json:"price"`
	Options  []OrderItemOption `json:"options,omitempty"`
}

type Order struct {
	Id             uint        `json:"id"`
	CustomerId     uint        `json:"customerId"`
	DriverId       *uint       `json:"driverId,omitempty"`
	RestaurantId   uint        `json:"restaurantId"`
	RestaurantName string      `json:"restaurantName,omitempty"`
	OwnerId        uint        `json:"ownerId"`
	Total          int         `json:"total"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	Items          []OrderItem `json:"items"`
}

type OrdersResponse struct {
	Result
	Orders []Order `json:"orders"`
}

type OrderResponse struct {
	Result
	Order *Order `json:"order,omitempty"`
}

type CreateOrderItem struct {
	DishId  uint              `json:"dishId"`
	Options []OrderItemOption `json:"options,omitempty"`
}

type CreateOrderRequest struct {
	RestaurantId uint              `json:"restaurantId"`
	Items        []CreateOrderItem `json:"items"`
}

type EditOrderRequest struct {
	Status OrderStatus `json:"status"`
}

type CreatePaymentRequest struct {
	TransactionId string `json:"transactionId"`
	RestaurantId  uint   `json:"restaurantId"`
}

type Payment struct {
	Id             uint      `json:"id"`
	TransactionId  string    `json:"transactionId"`
	RestaurantId   uint      `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type PaymentsResponse struct {
	Result
	Payments []Payment `json:"payments"`
}

type UploadResponse struct {
	Result
	Url string `json:"url,omitempty"`
}

// PageParams defines parameters for paged listings.
type PageParams struct {
	Page *int `form:"page,omitempty" json:"page,omitempty"`
}

type SearchRestaurantsParams struct {
	Query string `form:"query" json:"query"`
	Page  *int   `form:"page,omitempty" json:"page,omitempty"`
}

type GetOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}
