// @title           joe-marketer API
// @version         1.0
// @description     Generate product descriptions and social media hashtags from a product brief.
// @BasePath        /api/v1
package api
