package models

// PropertyStatus defines the lifecycle states of a property
type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusOccupied    PropertyStatus = "occupied"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
	PropertyStatusRenovation  PropertyStatus = "renovation"
	PropertyStatusVacant      PropertyStatus = "vacant"
	PropertyStatusSold        PropertyStatus = "sold"
)

// TenantStatus defines the lifecycle states of a tenancy
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusMovedOut TenantStatus = "moved_out"
	TenantStatusInactive TenantStatus = "inactive"
	TenantStatusEvicted  TenantStatus = "evicted"
	TenantStatusPending  TenantStatus = "pending"
)

// PropertyStatuses returns all property statuses in display order
func PropertyStatuses() []PropertyStatus {
	return []PropertyStatus{
		PropertyStatusAvailable,
		PropertyStatusOccupied,
		PropertyStatusMaintenance,
		PropertyStatusRenovation,
		PropertyStatusVacant,
		PropertyStatusSold,
	}
}

// TenantStatuses returns all tenant statuses in display order
func TenantStatuses() []TenantStatus {
	return []TenantStatus{
		TenantStatusActive,
		TenantStatusMovedOut,
		TenantStatusInactive,
		TenantStatusEvicted,
		TenantStatusPending,
	}
}

// IsValid checks if the PropertyStatus is valid
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusOccupied, PropertyStatusMaintenance,
		PropertyStatusRenovation, PropertyStatusVacant, PropertyStatusSold:
		return true
	}
	return false
}

// IsValid checks if the TenantStatus is valid
func (s TenantStatus) IsValid() bool {
	switch s {
	case TenantStatusActive, TenantStatusMovedOut, TenantStatusInactive, TenantStatusEvicted, TenantStatusPending:
		return true
	}
	return false
}

// Label returns the human readable name shown in forms
func (s PropertyStatus) Label() string {
	switch s {
	case PropertyStatusAvailable:
		return "Available"
	case PropertyStatusOccupied:
		return "Occupied"
	case PropertyStatusMaintenance:
		return "Under Maintenance"
	case PropertyStatusRenovation:
		return "Under Renovation"
	case PropertyStatusVacant:
		return "Vacant"
	case PropertyStatusSold:
		return "Sold"
	}
	return string(s)
}

// Label returns the human readable name shown in forms
func (s TenantStatus) Label() string {
	switch s {
	case TenantStatusActive:
		return "Active"
	case TenantStatusMovedOut:
		return "Moved Out"
	case TenantStatusInactive:
		return "Inactive"
	case TenantStatusEvicted:
		return "Evicted"
	case TenantStatusPending:
		return "Pending"
	}
	return string(s)
}

// PropertyStatusValues returns the property statuses as plain strings
func PropertyStatusValues() []string {
	statuses := PropertyStatuses()
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}

// TenantStatusValues returns the tenant statuses as plain strings
func TenantStatusValues() []string {
	statuses := TenantStatuses()
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}
