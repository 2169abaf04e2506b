package options

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
)

// ListingOptions captures the create/edit hosting form fields.
type ListingOptions struct {
	Title     string
	Street1   string
	Street2   string
	City      string
	State     int
	Postcode  int
	Price     int
	Type      int
	Bathrooms int
	Bedrooms  []string
	Amenities []string
	Thumbnail string
	Pictures  []string
}

func AddListingArgs(cmd *cobra.Command, o *ListingOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Listing title.")
	cmd.Flags().StringVar(&o.Street1, "street1", "",
		"Address line 1.")
	cmd.Flags().StringVar(&o.Street2, "street2", "",
		"Address line 2.")
	cmd.Flags().StringVar(&o.City, "city", "",
		"Address city.")
	cmd.Flags().IntVar(&o.State, "state", 0,
		"Address state index (0=NSW).")
	cmd.Flags().IntVar(&o.Postcode, "postcode", 0,
		"Address postcode.")
	cmd.Flags().IntVarP(&o.Price, "price", "p", 0,
		"Nightly price.")
	cmd.Flags().IntVar(&o.Type, "type", 0,
		"Property type index.")
	cmd.Flags().IntVar(&o.Bathrooms, "bathrooms", 1,
		"Bathroom count (6 means more than 5).")
	cmd.Flags().StringArrayVar(&o.Bedrooms, "bedroom", nil,
		"Bedroom as beds:bedtype, repeatable.")
	cmd.Flags().StringArrayVar(&o.Amenities, "amenity", nil,
		"Amenity description, repeatable.")
	cmd.Flags().StringVar(&o.Thumbnail, "thumbnail", "",
		"Path to the thumbnail image (png, jpg or jpeg).")
	cmd.Flags().StringArrayVar(&o.Pictures, "picture", nil,
		"Path to an extra image, repeatable.")
}

// Payload assembles the listing request body, encoding images as data
// URLs the way the web client uploads them.
func (o *ListingOptions) Payload() (client.ListingPayload, error) {
	var p client.ListingPayload

	if o.Thumbnail == "" {
		return p, fmt.Errorf("Please upload at least one picture as thumbnail")
	}
	thumbnail, err := imageToDataURL(o.Thumbnail)
	if err != nil {
		return p, err
	}

	pictures := make([]string, 0, len(o.Pictures))
	for _, path := range o.Pictures {
		url, err := imageToDataURL(path)
		if err != nil {
			return p, err
		}
		pictures = append(pictures, url)
	}

	bedrooms := make([][]int, 0, len(o.Bedrooms))
	for _, spec := range o.Bedrooms {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return p, fmt.Errorf("invalid bedroom %q, want beds:bedtype", spec)
		}
		beds, err1 := strconv.Atoi(parts[0])
		bedType, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return p, fmt.Errorf("invalid bedroom %q, want beds:bedtype", spec)
		}
		bedrooms = append(bedrooms, []int{beds, bedType})
	}

	return client.ListingPayload{
		Title: o.Title,
		Address: client.Address{
			Street1:  o.Street1,
			Street2:  o.Street2,
			City:     o.City,
			State:    o.State,
			Postcode: o.Postcode,
		},
		Price:     o.Price,
		Thumbnail: thumbnail,
		Metadata: client.Metadata{
			PropertyType: o.Type,
			Bathrooms:    o.Bathrooms,
			Bedrooms:     bedrooms,
			Amenities:    o.Amenities,
			Pictures:     pictures,
		},
	}, nil
}

var imageMIMEs = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

func imageToDataURL(path string) (string, error) {
	mime, ok := imageMIMEs[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("provided file is not a png, jpg or jpeg image.")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
