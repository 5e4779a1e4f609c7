package shield

import (
	"testing"

	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRoute(t *testing.T) {
	tests := []struct {
		path string
		want RouteClass
	}{
		{"/", ClassPage},
		{"/products/shift-knob", ClassPage},
		{"/contact", ClassPage},
		{"/_next/static/chunks/main.js", ClassStatic},
		{"/_next/image", ClassStatic},
		{"/favicon.ico", ClassStatic},
		{"/images/hero.webp", ClassStatic},
		{"/fonts/inter.woff2", ClassStatic},
		{"/api/admin/reviews", ClassAdmin},
		{"/management-portal", ClassAdmin},
		{"/management-portal/reviews", ClassAdmin},
		{"/api/product-stories", ClassPublicRead},
		{"/api/product-stories/carbon-spoiler", ClassPublicRead},
		{"/api/reviews/featured", ClassPublicRead},
		{"/api/contact", ClassAPI},
		{"/api/reviews", ClassAPI},
		{"/api/form-token", ClassAPI},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ClassifyRoute(tt.path); got != tt.want {
				t.Errorf("ClassifyRoute(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRouteClass_Policy(t *testing.T) {
	assert.Equal(t, ratelimit.AdminRoutes, ClassAdmin.Policy())
	assert.Equal(t, ratelimit.GeneralAPI, ClassAPI.Policy())
	assert.Equal(t, ratelimit.GeneralAPI, ClassPage.Policy())
}

func TestRouteClass_RateLimited(t *testing.T) {
	assert.True(t, ClassPage.RateLimited())
	assert.True(t, ClassAPI.RateLimited())
	assert.False(t, ClassAdmin.RateLimited())
	assert.False(t, ClassPublicRead.RateLimited())
	assert.False(t, ClassStatic.RateLimited())
}
