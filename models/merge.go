// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MergeUser copies every mutable field of source onto target in place.
//
// Identity (ID) and the storage-owned timestamps are never touched.
// The copy is unconditional: empty strings overwrite non-empty ones, so a
// caller that wants to keep the stored password must put it into source
// before merging.
func MergeUser(target *User, source User) {
	target.Email = source.Email
	target.FirstName = source.FirstName
	target.LastName = source.LastName
	target.Phone = source.Phone
	target.Password = source.Password
}

// MergeProperty copies every mutable field of source onto target in place.
// Identity (ID) and the storage-owned timestamps are never touched.
func MergeProperty(target *Property, source Property) {
	target.Title = source.Title
	target.Description = source.Description
	target.Address = source.Address
	target.City = source.City
	target.Country = source.Country
	target.Price = source.Price
	target.Bedrooms = source.Bedrooms
	target.Area = source.Area
	target.Available = source.Available
}
