package app

import (
	"AgriSuper/common"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

//路由
func InitRouters() {

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.LoadHTMLFiles("./static/index.html")
	r.StaticFS("/js", http.Dir("./static/js"))
	r.StaticFS("/css", http.Dir("./static/css"))
	r.StaticFS("/img", http.Dir("./static/img"))

	r.GET("/", func(c *gin.Context) {
		c.HTML(200, "index.html", nil)
	})

	store := cookie.NewStore([]byte(common.SessionSecret)) //启用cookie和session
	store.Options(sessions.Options{
		MaxAge: int(SESSION_EXPIRE),
	})

	r.Use(jsonResponse)
	r.Use(sessions.Sessions("agriSession", store))

	initApiRouters(r)
	if err := r.Run(common.WebHttp); err != nil {
		fmt.Println("路由初始化错误\n", err.Error())
	}
}

func initApiRouters(r *gin.Engine) {
	g0 := r.Group("/api") // 无需任何条件的请求
	{
		g0.GET("ping", ping)
		g0.POST("login", login)
		g0.POST("register", register)
		g0.GET("autologin", autologin)

		//forum
		g0.GET("getQuestions", getQuestions)
		g0.GET("getQuestion", getQuestion)
		g0.GET("getRelatedQuestions", getRelatedQuestions)
		g0.GET("getCategories", getCategories)
		g0.GET("getExperts", getExperts)
		g0.GET("getForumStats", getForumStats)

		//market
		g0.GET("getMandiPrices", getMandiPrices)
		g0.GET("getBestMandis", getBestMandis)
		g0.GET("getPriceTrend", getPriceTrend)
	}

	g1 := r.Group("/api") //需要登陆才能进行的请求
	g1.Use(AuthLogin)
	{
		g1.GET("logout", logout)

		//forum
		g1.POST("askQuestion", askQuestion)
		g1.POST("answerQuestion", answerQuestion)
		g1.GET("upvoteQuestion", upvoteQuestion)
		g1.GET("upvoteAnswer", upvoteAnswer)
	}

	g2 := r.Group("/api", AuthAdmin) //管理员
	{
		g2.GET("verifyAnswer", verifyAnswer)
	}
}
