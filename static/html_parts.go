package static

var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Ячейки по биссектрисам</title>
		<style>
			body {
				background-color: #1F1F1F; /* Темный фон для всей страницы */
				color: #d3d3d3; /* Светло-серый текст */
				font-family: Consolas, monospace;
				overflow: hidden; /* Запретить прокрутку */
				margin: 0;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 65%;
				padding: 10px;
				box-sizing: border-box;
				display: flex;
				flex-direction: column;
			}

			#right-container {
				width: 35%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575; /* Темная граница для правого контейнера */
				overflow-y: auto; /* Вертикальная прокрутка для логов */
				overflow-x: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap; /* Сохраняем пробелы и переносим строки */
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace; /* Моноширинный шрифт для логов */
			}

			#plot {
				flex: 1;
				min-height: 0;
			}

			#plot img {
				display: block;
				cursor: crosshair; /* Клик добавляет точку */
			}

			select,
			button {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			button:hover {
				background-color: #444; /* Немного светлее при наведении */
				cursor: pointer;
			}

			a {
				color: lightgreen;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <div id="controls">
                    <button id="prevMode">&lt;</button>
                    <select id="mode">`

	// between Part1 and Part2 the server writes the <option> list,
	// closes the select and adds the plot image
	Part2 = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            const plot = document.getElementById('plot');
            const img = document.getElementById('plot-img');

            function post(url, params) {
                return fetch(url, {
                    method: 'POST',
                    body: new URLSearchParams(params).toString(),
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                }).then(response => {
                    if (!response.ok) {
                        throw new Error('Ошибка при отправке данных');
                    }
                    return response.text();
                });
            }

            function reload() {
                return fetch('/').then(r => r.text()).then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                });
            }

            img.addEventListener('click', e => {
                post('/point', {x: e.offsetX, y: e.offsetY}).then(reload)
                    .catch(error => console.error('Ошибка:', error));
            });

            document.getElementById('mode').addEventListener('change', e => {
                post('/mode', {mode: e.target.value}).then(reload);
            });
            document.getElementById('prevMode').addEventListener('click', () => {
                post('/mode', {step: 'prev'}).then(reload);
            });
            document.getElementById('nextMode').addEventListener('click', () => {
                post('/mode', {step: 'next'}).then(reload);
            });
            document.getElementById('reset').addEventListener('click', () => {
                post('/reset', {}).then(reload);
            });

            let lastSize = [img.naturalWidth, img.naturalHeight];
            new ResizeObserver(() => {
                const size = [plot.clientWidth, plot.clientHeight];
                if (size[0] === lastSize[0] && size[1] === lastSize[1]) {
                    return;
                }
                lastSize = size;
                post('/resize', {width: size[0], height: size[1]}).then(() => {
                    img.src = '/plot.png?t=' + Date.now();
                });
            }).observe(plot);
        </script>
    </body>
    </html>
    `
)
