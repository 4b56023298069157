// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"time"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

type APIKey struct {
	APIKey string
	Roles  []string
}

// GetAPIKey returns the value of APIKey.
func (s *APIKey) GetAPIKey() string {
	return s.APIKey
}

// GetRoles returns the value of Roles.
func (s *APIKey) GetRoles() []string {
	return s.Roles
}

// SetAPIKey sets the value of APIKey.
func (s *APIKey) SetAPIKey(val string) {
	s.APIKey = val
}

// SetRoles sets the value of Roles.
func (s *APIKey) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/Address
type Address struct {
	FullName   string    `json:"fullName"`
	Phone      OptString `json:"phone"`
	Line1      string    `json:"line1"`
	Line2      OptString `json:"line2"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
	Country    OptString `json:"country"`
}

// GetFullName returns the value of FullName.
func (s *Address) GetFullName() string {
	return s.FullName
}

// GetPhone returns the value of Phone.
func (s *Address) GetPhone() OptString {
	return s.Phone
}

// GetLine1 returns the value of Line1.
func (s *Address) GetLine1() string {
	return s.Line1
}

// GetLine2 returns the value of Line2.
func (s *Address) GetLine2() OptString {
	return s.Line2
}

// GetCity returns the value of City.
func (s *Address) GetCity() string {
	return s.City
}

// GetState returns the value of State.
func (s *Address) GetState() string {
	return s.State
}

// GetPostalCode returns the value of PostalCode.
func (s *Address) GetPostalCode() string {
	return s.PostalCode
}

// GetCountry returns the value of Country.
func (s *Address) GetCountry() OptString {
	return s.Country
}

// SetFullName sets the value of FullName.
func (s *Address) SetFullName(val string) {
	s.FullName = val
}

// SetPhone sets the value of Phone.
func (s *Address) SetPhone(val OptString) {
	s.Phone = val
}

// SetLine1 sets the value of Line1.
func (s *Address) SetLine1(val string) {
	s.Line1 = val
}

// SetLine2 sets the value of Line2.
func (s *Address) SetLine2(val OptString) {
	s.Line2 = val
}

// SetCity sets the value of City.
func (s *Address) SetCity(val string) {
	s.City = val
}

// SetState sets the value of State.
func (s *Address) SetState(val string) {
	s.State = val
}

// SetPostalCode sets the value of PostalCode.
func (s *Address) SetPostalCode(val string) {
	s.PostalCode = val
}

// SetCountry sets the value of Country.
func (s *Address) SetCountry(val OptString) {
	s.Country = val
}

// Ref: #/components/schemas/CartItem
type CartItem struct {
	ProductId  int64     `json:"productId"`
	Quantity   int       `json:"quantity"`
	PriceAtAdd float64   `json:"priceAtAdd"`
	AddedAt    time.Time `json:"addedAt"`
}

// GetProductId returns the value of ProductId.
func (s *CartItem) GetProductId() int64 {
	return s.ProductId
}

// GetQuantity returns the value of Quantity.
func (s *CartItem) GetQuantity() int {
	return s.Quantity
}

// GetPriceAtAdd returns the value of PriceAtAdd.
func (s *CartItem) GetPriceAtAdd() float64 {
	return s.PriceAtAdd
}

// GetAddedAt returns the value of AddedAt.
func (s *CartItem) GetAddedAt() time.Time {
	return s.AddedAt
}

// SetProductId sets the value of ProductId.
func (s *CartItem) SetProductId(val int64) {
	s.ProductId = val
}

// SetQuantity sets the value of Quantity.
func (s *CartItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetPriceAtAdd sets the value of PriceAtAdd.
func (s *CartItem) SetPriceAtAdd(val float64) {
	s.PriceAtAdd = val
}

// SetAddedAt sets the value of AddedAt.
func (s *CartItem) SetAddedAt(val time.Time) {
	s.AddedAt = val
}

// Ref: #/components/schemas/CartItemResponse
type CartItemResponse struct {
	Success bool     `json:"success"`
	Data    CartItem `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *CartItemResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *CartItemResponse) GetData() CartItem {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *CartItemResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *CartItemResponse) SetData(val CartItem) {
	s.Data = val
}

// Ref: #/components/schemas/CartResponse
type CartResponse struct {
	Success bool       `json:"success"`
	Data    []CartItem `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *CartResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *CartResponse) GetData() []CartItem {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *CartResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *CartResponse) SetData(val []CartItem) {
	s.Data = val
}

// Ref: #/components/schemas/Coupon
type Coupon struct {
	ID                    int64      `json:"id"`
	Code                  string     `json:"code"`
	Description           string     `json:"description"`
	DiscountType          string     `json:"discountType"`
	DiscountValue         float64    `json:"discountValue"`
	MinimumOrderAmount    float64    `json:"minimumOrderAmount"`
	MaximumDiscountAmount OptFloat64 `json:"maximumDiscountAmount"`
	UsageLimit            OptInt     `json:"usageLimit"`
	UsedCount             int        `json:"usedCount"`
	ValidFrom             time.Time  `json:"validFrom"`
	ValidUntil            time.Time  `json:"validUntil"`
	IsActive              bool       `json:"isActive"`
}

// GetID returns the value of ID.
func (s *Coupon) GetID() int64 {
	return s.ID
}

// GetCode returns the value of Code.
func (s *Coupon) GetCode() string {
	return s.Code
}

// GetDescription returns the value of Description.
func (s *Coupon) GetDescription() string {
	return s.Description
}

// GetDiscountType returns the value of DiscountType.
func (s *Coupon) GetDiscountType() string {
	return s.DiscountType
}

// GetDiscountValue returns the value of DiscountValue.
func (s *Coupon) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetMinimumOrderAmount returns the value of MinimumOrderAmount.
func (s *Coupon) GetMinimumOrderAmount() float64 {
	return s.MinimumOrderAmount
}

// GetMaximumDiscountAmount returns the value of MaximumDiscountAmount.
func (s *Coupon) GetMaximumDiscountAmount() OptFloat64 {
	return s.MaximumDiscountAmount
}

// GetUsageLimit returns the value of UsageLimit.
func (s *Coupon) GetUsageLimit() OptInt {
	return s.UsageLimit
}

// GetUsedCount returns the value of UsedCount.
func (s *Coupon) GetUsedCount() int {
	return s.UsedCount
}

// GetValidFrom returns the value of ValidFrom.
func (s *Coupon) GetValidFrom() time.Time {
	return s.ValidFrom
}

// GetValidUntil returns the value of ValidUntil.
func (s *Coupon) GetValidUntil() time.Time {
	return s.ValidUntil
}

// GetIsActive returns the value of IsActive.
func (s *Coupon) GetIsActive() bool {
	return s.IsActive
}

// SetID sets the value of ID.
func (s *Coupon) SetID(val int64) {
	s.ID = val
}

// SetCode sets the value of Code.
func (s *Coupon) SetCode(val string) {
	s.Code = val
}

// SetDescription sets the value of Description.
func (s *Coupon) SetDescription(val string) {
	s.Description = val
}

// SetDiscountType sets the value of DiscountType.
func (s *Coupon) SetDiscountType(val string) {
	s.DiscountType = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *Coupon) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetMinimumOrderAmount sets the value of MinimumOrderAmount.
func (s *Coupon) SetMinimumOrderAmount(val float64) {
	s.MinimumOrderAmount = val
}

// SetMaximumDiscountAmount sets the value of MaximumDiscountAmount.
func (s *Coupon) SetMaximumDiscountAmount(val OptFloat64) {
	s.MaximumDiscountAmount = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *Coupon) SetUsageLimit(val OptInt) {
	s.UsageLimit = val
}

// SetUsedCount sets the value of UsedCount.
func (s *Coupon) SetUsedCount(val int) {
	s.UsedCount = val
}

// SetValidFrom sets the value of ValidFrom.
func (s *Coupon) SetValidFrom(val time.Time) {
	s.ValidFrom = val
}

// SetValidUntil sets the value of ValidUntil.
func (s *Coupon) SetValidUntil(val time.Time) {
	s.ValidUntil = val
}

// SetIsActive sets the value of IsActive.
func (s *Coupon) SetIsActive(val bool) {
	s.IsActive = val
}

// Ref: #/components/schemas/CouponListResponse
type CouponListResponse struct {
	Success bool     `json:"success"`
	Data    []Coupon `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *CouponListResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *CouponListResponse) GetData() []Coupon {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *CouponListResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *CouponListResponse) SetData(val []Coupon) {
	s.Data = val
}

// Ref: #/components/schemas/CouponResponse
type CouponResponse struct {
	Success bool   `json:"success"`
	Data    Coupon `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *CouponResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *CouponResponse) GetData() Coupon {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *CouponResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *CouponResponse) SetData(val Coupon) {
	s.Data = val
}

// Ref: #/components/schemas/CouponValidation
type CouponValidation struct {
	Valid    bool      `json:"valid"`
	Discount float64   `json:"discount"`
	Message  OptString `json:"message"`
	CouponId OptInt64  `json:"couponId"`
	Code     OptString `json:"code"`
}

// GetValid returns the value of Valid.
func (s *CouponValidation) GetValid() bool {
	return s.Valid
}

// GetDiscount returns the value of Discount.
func (s *CouponValidation) GetDiscount() float64 {
	return s.Discount
}

// GetMessage returns the value of Message.
func (s *CouponValidation) GetMessage() OptString {
	return s.Message
}

// GetCouponId returns the value of CouponId.
func (s *CouponValidation) GetCouponId() OptInt64 {
	return s.CouponId
}

// GetCode returns the value of Code.
func (s *CouponValidation) GetCode() OptString {
	return s.Code
}

// SetValid sets the value of Valid.
func (s *CouponValidation) SetValid(val bool) {
	s.Valid = val
}

// SetDiscount sets the value of Discount.
func (s *CouponValidation) SetDiscount(val float64) {
	s.Discount = val
}

// SetMessage sets the value of Message.
func (s *CouponValidation) SetMessage(val OptString) {
	s.Message = val
}

// SetCouponId sets the value of CouponId.
func (s *CouponValidation) SetCouponId(val OptInt64) {
	s.CouponId = val
}

// SetCode sets the value of Code.
func (s *CouponValidation) SetCode(val OptString) {
	s.Code = val
}

// Ref: #/components/schemas/CouponValidationResponse
type CouponValidationResponse struct {
	Success bool             `json:"success"`
	Data    CouponValidation `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *CouponValidationResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *CouponValidationResponse) GetData() CouponValidation {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *CouponValidationResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *CouponValidationResponse) SetData(val CouponValidation) {
	s.Data = val
}

// Ref: #/components/schemas/CreateCouponRequest
type CreateCouponRequest struct {
	Code        string    `json:"code"`
	Description OptString `json:"description"`
	// Percentage or fixed_amount.
	DiscountType          string     `json:"discountType"`
	DiscountValue         float64    `json:"discountValue"`
	MinimumOrderAmount    OptFloat64 `json:"minimumOrderAmount"`
	MaximumDiscountAmount OptFloat64 `json:"maximumDiscountAmount"`
	UsageLimit            OptInt     `json:"usageLimit"`
	ValidFrom             time.Time  `json:"validFrom"`
	ValidUntil            time.Time  `json:"validUntil"`
}

// GetCode returns the value of Code.
func (s *CreateCouponRequest) GetCode() string {
	return s.Code
}

// GetDescription returns the value of Description.
func (s *CreateCouponRequest) GetDescription() OptString {
	return s.Description
}

// GetDiscountType returns the value of DiscountType.
func (s *CreateCouponRequest) GetDiscountType() string {
	return s.DiscountType
}

// GetDiscountValue returns the value of DiscountValue.
func (s *CreateCouponRequest) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetMinimumOrderAmount returns the value of MinimumOrderAmount.
func (s *CreateCouponRequest) GetMinimumOrderAmount() OptFloat64 {
	return s.MinimumOrderAmount
}

// GetMaximumDiscountAmount returns the value of MaximumDiscountAmount.
func (s *CreateCouponRequest) GetMaximumDiscountAmount() OptFloat64 {
	return s.MaximumDiscountAmount
}

// GetUsageLimit returns the value of UsageLimit.
func (s *CreateCouponRequest) GetUsageLimit() OptInt {
	return s.UsageLimit
}

// GetValidFrom returns the value of ValidFrom.
func (s *CreateCouponRequest) GetValidFrom() time.Time {
	return s.ValidFrom
}

// GetValidUntil returns the value of ValidUntil.
func (s *CreateCouponRequest) GetValidUntil() time.Time {
	return s.ValidUntil
}

// SetCode sets the value of Code.
func (s *CreateCouponRequest) SetCode(val string) {
	s.Code = val
}

// SetDescription sets the value of Description.
func (s *CreateCouponRequest) SetDescription(val OptString) {
	s.Description = val
}

// SetDiscountType sets the value of DiscountType.
func (s *CreateCouponRequest) SetDiscountType(val string) {
	s.DiscountType = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *CreateCouponRequest) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetMinimumOrderAmount sets the value of MinimumOrderAmount.
func (s *CreateCouponRequest) SetMinimumOrderAmount(val OptFloat64) {
	s.MinimumOrderAmount = val
}

// SetMaximumDiscountAmount sets the value of MaximumDiscountAmount.
func (s *CreateCouponRequest) SetMaximumDiscountAmount(val OptFloat64) {
	s.MaximumDiscountAmount = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *CreateCouponRequest) SetUsageLimit(val OptInt) {
	s.UsageLimit = val
}

// SetValidFrom sets the value of ValidFrom.
func (s *CreateCouponRequest) SetValidFrom(val time.Time) {
	s.ValidFrom = val
}

// SetValidUntil sets the value of ValidUntil.
func (s *CreateCouponRequest) SetValidUntil(val time.Time) {
	s.ValidUntil = val
}

// Ref: #/components/schemas/CreateOrderRequest
type CreateOrderRequest struct {
	ShippingAddress Address    `json:"shippingAddress"`
	BillingAddress  OptAddress `json:"billingAddress"`
	CouponCode      OptString  `json:"couponCode"`
	// One of cod, razorpay, card, upi.
	PaymentMethod string    `json:"paymentMethod"`
	Notes         OptString `json:"notes"`
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *CreateOrderRequest) GetShippingAddress() Address {
	return s.ShippingAddress
}

// GetBillingAddress returns the value of BillingAddress.
func (s *CreateOrderRequest) GetBillingAddress() OptAddress {
	return s.BillingAddress
}

// GetCouponCode returns the value of CouponCode.
func (s *CreateOrderRequest) GetCouponCode() OptString {
	return s.CouponCode
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *CreateOrderRequest) GetPaymentMethod() string {
	return s.PaymentMethod
}

// GetNotes returns the value of Notes.
func (s *CreateOrderRequest) GetNotes() OptString {
	return s.Notes
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *CreateOrderRequest) SetShippingAddress(val Address) {
	s.ShippingAddress = val
}

// SetBillingAddress sets the value of BillingAddress.
func (s *CreateOrderRequest) SetBillingAddress(val OptAddress) {
	s.BillingAddress = val
}

// SetCouponCode sets the value of CouponCode.
func (s *CreateOrderRequest) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *CreateOrderRequest) SetPaymentMethod(val string) {
	s.PaymentMethod = val
}

// SetNotes sets the value of Notes.
func (s *CreateOrderRequest) SetNotes(val OptString) {
	s.Notes = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	RequestId OptString `json:"requestId"`
}

// GetSuccess returns the value of Success.
func (s *Error) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// GetRequestId returns the value of RequestId.
func (s *Error) GetRequestId() OptString {
	return s.RequestId
}

// SetSuccess sets the value of Success.
func (s *Error) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// SetRequestId sets the value of RequestId.
func (s *Error) SetRequestId(val OptString) {
	s.RequestId = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/Image
type Image struct {
	Thumbnail string `json:"thumbnail"`
	Mobile    string `json:"mobile"`
	Tablet    string `json:"tablet"`
	Desktop   string `json:"desktop"`
}

// GetThumbnail returns the value of Thumbnail.
func (s *Image) GetThumbnail() string {
	return s.Thumbnail
}

// GetMobile returns the value of Mobile.
func (s *Image) GetMobile() string {
	return s.Mobile
}

// GetTablet returns the value of Tablet.
func (s *Image) GetTablet() string {
	return s.Tablet
}

// GetDesktop returns the value of Desktop.
func (s *Image) GetDesktop() string {
	return s.Desktop
}

// SetThumbnail sets the value of Thumbnail.
func (s *Image) SetThumbnail(val string) {
	s.Thumbnail = val
}

// SetMobile sets the value of Mobile.
func (s *Image) SetMobile(val string) {
	s.Mobile = val
}

// SetTablet sets the value of Tablet.
func (s *Image) SetTablet(val string) {
	s.Tablet = val
}

// SetDesktop sets the value of Desktop.
func (s *Image) SetDesktop(val string) {
	s.Desktop = val
}

// NewOptAddress returns new OptAddress with value set to v.
func NewOptAddress(v Address) OptAddress {
	return OptAddress{
		Value: v,
		Set:   true,
	}
}

// OptAddress is optional Address.
type OptAddress struct {
	Value Address
	Set   bool
}

// IsSet returns true if OptAddress was set.
func (o OptAddress) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptAddress) Reset() {
	var v Address
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptAddress) SetTo(v Address) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptAddress) Get() (v Address, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptAddress) Or(d Address) Address {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{
		Value: v,
		Set:   true,
	}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptFloat64 returns new OptFloat64 with value set to v.
func NewOptFloat64(v float64) OptFloat64 {
	return OptFloat64{
		Value: v,
		Set:   true,
	}
}

// OptFloat64 is optional float64.
type OptFloat64 struct {
	Value float64
	Set   bool
}

// IsSet returns true if OptFloat64 was set.
func (o OptFloat64) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptFloat64) Reset() {
	var v float64
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptFloat64) SetTo(v float64) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptFloat64) Get() (v float64, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptFloat64) Or(d float64) float64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt64 returns new OptInt64 with value set to v.
func NewOptInt64(v int64) OptInt64 {
	return OptInt64{
		Value: v,
		Set:   true,
	}
}

// OptInt64 is optional int64.
type OptInt64 struct {
	Value int64
	Set   bool
}

// IsSet returns true if OptInt64 was set.
func (o OptInt64) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt64) Reset() {
	var v int64
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt64) SetTo(v int64) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt64) Get() (v int64, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt64) Or(d int64) int64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	ID              int64          `json:"id"`
	OrderNumber     string         `json:"orderNumber"`
	UserId          int64          `json:"userId"`
	Status          string         `json:"status"`
	Items           []OrderItem    `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	TaxAmount       float64        `json:"taxAmount"`
	ShippingAmount  float64        `json:"shippingAmount"`
	DiscountAmount  float64        `json:"discountAmount"`
	TotalAmount     float64        `json:"totalAmount"`
	CouponCode      OptString      `json:"couponCode"`
	PaymentMethod   string         `json:"paymentMethod"`
	ShippingAddress Address        `json:"shippingAddress"`
	BillingAddress  Address        `json:"billingAddress"`
	TrackingNumber  OptString      `json:"trackingNumber"`
	DeliveredAt     OptDateTime    `json:"deliveredAt"`
	Notes           OptString      `json:"notes"`
	StatusHistory   []StatusChange `json:"statusHistory"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// GetID returns the value of ID.
func (s *Order) GetID() int64 {
	return s.ID
}

// GetOrderNumber returns the value of OrderNumber.
func (s *Order) GetOrderNumber() string {
	return s.OrderNumber
}

// GetUserId returns the value of UserId.
func (s *Order) GetUserId() int64 {
	return s.UserId
}

// GetStatus returns the value of Status.
func (s *Order) GetStatus() string {
	return s.Status
}

// GetItems returns the value of Items.
func (s *Order) GetItems() []OrderItem {
	return s.Items
}

// GetSubtotal returns the value of Subtotal.
func (s *Order) GetSubtotal() float64 {
	return s.Subtotal
}

// GetTaxAmount returns the value of TaxAmount.
func (s *Order) GetTaxAmount() float64 {
	return s.TaxAmount
}

// GetShippingAmount returns the value of ShippingAmount.
func (s *Order) GetShippingAmount() float64 {
	return s.ShippingAmount
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *Order) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// GetTotalAmount returns the value of TotalAmount.
func (s *Order) GetTotalAmount() float64 {
	return s.TotalAmount
}

// GetCouponCode returns the value of CouponCode.
func (s *Order) GetCouponCode() OptString {
	return s.CouponCode
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *Order) GetPaymentMethod() string {
	return s.PaymentMethod
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *Order) GetShippingAddress() Address {
	return s.ShippingAddress
}

// GetBillingAddress returns the value of BillingAddress.
func (s *Order) GetBillingAddress() Address {
	return s.BillingAddress
}

// GetTrackingNumber returns the value of TrackingNumber.
func (s *Order) GetTrackingNumber() OptString {
	return s.TrackingNumber
}

// GetDeliveredAt returns the value of DeliveredAt.
func (s *Order) GetDeliveredAt() OptDateTime {
	return s.DeliveredAt
}

// GetNotes returns the value of Notes.
func (s *Order) GetNotes() OptString {
	return s.Notes
}

// GetStatusHistory returns the value of StatusHistory.
func (s *Order) GetStatusHistory() []StatusChange {
	return s.StatusHistory
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Order) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Order) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// SetID sets the value of ID.
func (s *Order) SetID(val int64) {
	s.ID = val
}

// SetOrderNumber sets the value of OrderNumber.
func (s *Order) SetOrderNumber(val string) {
	s.OrderNumber = val
}

// SetUserId sets the value of UserId.
func (s *Order) SetUserId(val int64) {
	s.UserId = val
}

// SetStatus sets the value of Status.
func (s *Order) SetStatus(val string) {
	s.Status = val
}

// SetItems sets the value of Items.
func (s *Order) SetItems(val []OrderItem) {
	s.Items = val
}

// SetSubtotal sets the value of Subtotal.
func (s *Order) SetSubtotal(val float64) {
	s.Subtotal = val
}

// SetTaxAmount sets the value of TaxAmount.
func (s *Order) SetTaxAmount(val float64) {
	s.TaxAmount = val
}

// SetShippingAmount sets the value of ShippingAmount.
func (s *Order) SetShippingAmount(val float64) {
	s.ShippingAmount = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *Order) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// SetTotalAmount sets the value of TotalAmount.
func (s *Order) SetTotalAmount(val float64) {
	s.TotalAmount = val
}

// SetCouponCode sets the value of CouponCode.
func (s *Order) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *Order) SetPaymentMethod(val string) {
	s.PaymentMethod = val
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *Order) SetShippingAddress(val Address) {
	s.ShippingAddress = val
}

// SetBillingAddress sets the value of BillingAddress.
func (s *Order) SetBillingAddress(val Address) {
	s.BillingAddress = val
}

// SetTrackingNumber sets the value of TrackingNumber.
func (s *Order) SetTrackingNumber(val OptString) {
	s.TrackingNumber = val
}

// SetDeliveredAt sets the value of DeliveredAt.
func (s *Order) SetDeliveredAt(val OptDateTime) {
	s.DeliveredAt = val
}

// SetNotes sets the value of Notes.
func (s *Order) SetNotes(val OptString) {
	s.Notes = val
}

// SetStatusHistory sets the value of StatusHistory.
func (s *Order) SetStatusHistory(val []StatusChange) {
	s.StatusHistory = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Order) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Order) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// Ref: #/components/schemas/OrderItem
type OrderItem struct {
	ProductId   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

// GetProductId returns the value of ProductId.
func (s *OrderItem) GetProductId() int64 {
	return s.ProductId
}

// GetProductName returns the value of ProductName.
func (s *OrderItem) GetProductName() string {
	return s.ProductName
}

// GetQuantity returns the value of Quantity.
func (s *OrderItem) GetQuantity() int {
	return s.Quantity
}

// GetUnitPrice returns the value of UnitPrice.
func (s *OrderItem) GetUnitPrice() float64 {
	return s.UnitPrice
}

// GetLineTotal returns the value of LineTotal.
func (s *OrderItem) GetLineTotal() float64 {
	return s.LineTotal
}

// SetProductId sets the value of ProductId.
func (s *OrderItem) SetProductId(val int64) {
	s.ProductId = val
}

// SetProductName sets the value of ProductName.
func (s *OrderItem) SetProductName(val string) {
	s.ProductName = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetUnitPrice sets the value of UnitPrice.
func (s *OrderItem) SetUnitPrice(val float64) {
	s.UnitPrice = val
}

// SetLineTotal sets the value of LineTotal.
func (s *OrderItem) SetLineTotal(val float64) {
	s.LineTotal = val
}

// Ref: #/components/schemas/OrderListResponse
type OrderListResponse struct {
	Success bool    `json:"success"`
	Data    []Order `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *OrderListResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *OrderListResponse) GetData() []Order {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *OrderListResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *OrderListResponse) SetData(val []Order) {
	s.Data = val
}

// Ref: #/components/schemas/OrderResponse
type OrderResponse struct {
	Success bool  `json:"success"`
	Data    Order `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *OrderResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *OrderResponse) GetData() Order {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *OrderResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *OrderResponse) SetData(val Order) {
	s.Data = val
}

// Ref: #/components/schemas/Product
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	InStock       bool    `json:"inStock"`
	Image         Image   `json:"image"`
}

// GetID returns the value of ID.
func (s *Product) GetID() int64 {
	return s.ID
}

// GetName returns the value of Name.
func (s *Product) GetName() string {
	return s.Name
}

// GetPrice returns the value of Price.
func (s *Product) GetPrice() float64 {
	return s.Price
}

// GetCategory returns the value of Category.
func (s *Product) GetCategory() string {
	return s.Category
}

// GetStockQuantity returns the value of StockQuantity.
func (s *Product) GetStockQuantity() int {
	return s.StockQuantity
}

// GetInStock returns the value of InStock.
func (s *Product) GetInStock() bool {
	return s.InStock
}

// GetImage returns the value of Image.
func (s *Product) GetImage() Image {
	return s.Image
}

// SetID sets the value of ID.
func (s *Product) SetID(val int64) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *Product) SetName(val string) {
	s.Name = val
}

// SetPrice sets the value of Price.
func (s *Product) SetPrice(val float64) {
	s.Price = val
}

// SetCategory sets the value of Category.
func (s *Product) SetCategory(val string) {
	s.Category = val
}

// SetStockQuantity sets the value of StockQuantity.
func (s *Product) SetStockQuantity(val int) {
	s.StockQuantity = val
}

// SetInStock sets the value of InStock.
func (s *Product) SetInStock(val bool) {
	s.InStock = val
}

// SetImage sets the value of Image.
func (s *Product) SetImage(val Image) {
	s.Image = val
}

// Ref: #/components/schemas/ProductListResponse
type ProductListResponse struct {
	Success bool      `json:"success"`
	Data    []Product `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *ProductListResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *ProductListResponse) GetData() []Product {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *ProductListResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *ProductListResponse) SetData(val []Product) {
	s.Data = val
}

// Ref: #/components/schemas/ProductResponse
type ProductResponse struct {
	Success bool    `json:"success"`
	Data    Product `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *ProductResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *ProductResponse) GetData() Product {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *ProductResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *ProductResponse) SetData(val Product) {
	s.Data = val
}

// Ref: #/components/schemas/SetCartItemRequest
type SetCartItemRequest struct {
	ProductId int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// GetProductId returns the value of ProductId.
func (s *SetCartItemRequest) GetProductId() int64 {
	return s.ProductId
}

// GetQuantity returns the value of Quantity.
func (s *SetCartItemRequest) GetQuantity() int {
	return s.Quantity
}

// SetProductId sets the value of ProductId.
func (s *SetCartItemRequest) SetProductId(val int64) {
	s.ProductId = val
}

// SetQuantity sets the value of Quantity.
func (s *SetCartItemRequest) SetQuantity(val int) {
	s.Quantity = val
}

// Ref: #/components/schemas/StatusChange
type StatusChange struct {
	Status    string    `json:"status"`
	Comment   string    `json:"comment"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetStatus returns the value of Status.
func (s *StatusChange) GetStatus() string {
	return s.Status
}

// GetComment returns the value of Comment.
func (s *StatusChange) GetComment() string {
	return s.Comment
}

// GetActor returns the value of Actor.
func (s *StatusChange) GetActor() string {
	return s.Actor
}

// GetCreatedAt returns the value of CreatedAt.
func (s *StatusChange) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// SetStatus sets the value of Status.
func (s *StatusChange) SetStatus(val string) {
	s.Status = val
}

// SetComment sets the value of Comment.
func (s *StatusChange) SetComment(val string) {
	s.Comment = val
}

// SetActor sets the value of Actor.
func (s *StatusChange) SetActor(val string) {
	s.Actor = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *StatusChange) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success"`
}

// GetSuccess returns the value of Success.
func (s *SuccessResponse) GetSuccess() bool {
	return s.Success
}

// SetSuccess sets the value of Success.
func (s *SuccessResponse) SetSuccess(val bool) {
	s.Success = val
}

// Ref: #/components/schemas/UpdateOrderStatusRequest
type UpdateOrderStatusRequest struct {
	// Target status, case-insensitive.
	Status         string    `json:"status"`
	TrackingNumber OptString `json:"trackingNumber"`
	Comment        OptString `json:"comment"`
}

// GetStatus returns the value of Status.
func (s *UpdateOrderStatusRequest) GetStatus() string {
	return s.Status
}

// GetTrackingNumber returns the value of TrackingNumber.
func (s *UpdateOrderStatusRequest) GetTrackingNumber() OptString {
	return s.TrackingNumber
}

// GetComment returns the value of Comment.
func (s *UpdateOrderStatusRequest) GetComment() OptString {
	return s.Comment
}

// SetStatus sets the value of Status.
func (s *UpdateOrderStatusRequest) SetStatus(val string) {
	s.Status = val
}

// SetTrackingNumber sets the value of TrackingNumber.
func (s *UpdateOrderStatusRequest) SetTrackingNumber(val OptString) {
	s.TrackingNumber = val
}

// SetComment sets the value of Comment.
func (s *UpdateOrderStatusRequest) SetComment(val OptString) {
	s.Comment = val
}

// Ref: #/components/schemas/UseCouponRequest
type UseCouponRequest struct {
	OrderId int64 `json:"orderId"`
}

// GetOrderId returns the value of OrderId.
func (s *UseCouponRequest) GetOrderId() int64 {
	return s.OrderId
}

// SetOrderId sets the value of OrderId.
func (s *UseCouponRequest) SetOrderId(val int64) {
	s.OrderId = val
}

// Ref: #/components/schemas/ValidateCouponRequest
type ValidateCouponRequest struct {
	Code        string  `json:"code"`
	OrderAmount float64 `json:"orderAmount"`
}

// GetCode returns the value of Code.
func (s *ValidateCouponRequest) GetCode() string {
	return s.Code
}

// GetOrderAmount returns the value of OrderAmount.
func (s *ValidateCouponRequest) GetOrderAmount() float64 {
	return s.OrderAmount
}

// SetCode sets the value of Code.
func (s *ValidateCouponRequest) SetCode(val string) {
	s.Code = val
}

// SetOrderAmount sets the value of OrderAmount.
func (s *ValidateCouponRequest) SetOrderAmount(val float64) {
	s.OrderAmount = val
}
